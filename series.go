package main

// chartPoint is one (label, value) pair in a metric series. Label is the short
// tick label, FullDate the tooltip label. Category is set on BMI points only
// and drives per-point dot coloring.
type chartPoint struct {
	Label    string  `json:"label"`
	FullDate string  `json:"full_date"`
	Value    float64 `json:"value"`
	Category string  `json:"category,omitempty"`
}

// progressSeries holds the four metric series derived from a user's entries.
// The x-axis is categorical (one label per included point), so a series that
// skips entries has no visual gaps — it is simply shorter.
type progressSeries struct {
	Weight   []chartPoint `json:"weight"`
	BMI      []chartPoint `json:"bmi"`
	LeanMass []chartPoint `json:"lean_mass"`
	BodyFat  []chartPoint `json:"body_fat"`
}

const (
	shortDateFormat = "Jan 2"
	longDateFormat  = "January 2, 2006"
)

// buildSeries maps entries (already ascending by date — the store guarantees
// order, this function never sorts) into the four metric series.
//
//   - weight: every entry (weight is always present).
//   - body_fat, lean_mass: only entries with a positive body-fat measurement;
//     entries without one are skipped, never zero-filled.
//   - bmi: empty when heightM is nil or non-positive, else every entry.
//     Category comes from the unrounded BMI; the point value is rounded for
//     display only.
//
// An empty entry list yields four empty, non-nil series so JSON renders []
// and callers show a "no data" state rather than erroring.
func buildSeries(entries []progressEntry, heightM *float64) progressSeries {
	s := progressSeries{
		Weight:   make([]chartPoint, 0, len(entries)),
		BMI:      []chartPoint{},
		LeanMass: []chartPoint{},
		BodyFat:  []chartPoint{},
	}

	height := 0.0
	if heightM != nil {
		height = *heightM
	}

	for _, e := range entries {
		label := e.Date.Format(shortDateFormat)
		full := e.Date.Format(longDateFormat)

		s.Weight = append(s.Weight, chartPoint{Label: label, FullDate: full, Value: round1(e.WeightKG)})

		if bmi, ok := computeBMI(e.WeightKG, height); ok {
			s.BMI = append(s.BMI, chartPoint{
				Label:    label,
				FullDate: full,
				Value:    round2(bmi),
				Category: classifyBMI(bmi),
			})
		}

		if lean, ok := computeLeanMass(e.WeightKG, e.BodyFatPct); ok {
			s.LeanMass = append(s.LeanMass, chartPoint{Label: label, FullDate: full, Value: round1(lean)})
			s.BodyFat = append(s.BodyFat, chartPoint{Label: label, FullDate: full, Value: round1(*e.BodyFatPct)})
		}
	}

	return s
}

// seriesValues extracts the raw values of a series for domain calculation.
func seriesValues(points []chartPoint) []float64 {
	values := make([]float64, 0, len(points))
	for _, p := range points {
		values = append(values, p.Value)
	}
	return values
}
