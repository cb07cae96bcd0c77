package main

import "math"

// BMI category thresholds (WHO bands). The bands are contiguous and cover the
// whole real line: (-inf, 18.5), [18.5, 25), [25, 30), [30, +inf).
const (
	bmiUnderweightMax = 18.5
	bmiNormalMax      = 25
	bmiOverweightMax  = 30
)

// computeBMI returns weight(kg) / height(m)². ok=false when height is zero or
// negative (callers pass 0 for an unset height) — BMI is undefined, not an error.
// The returned value is unrounded; round only at display time so classification
// never flips at a category boundary (e.g. 24.995 must stay Normal).
func computeBMI(weightKG, heightM float64) (float64, bool) {
	if heightM <= 0 {
		return 0, false
	}
	return weightKG / (heightM * heightM), true
}

// classifyBMI maps a BMI value to its category name. Total over all floats —
// every defined BMI lands in exactly one band. Always call with the unrounded
// value from computeBMI.
func classifyBMI(bmi float64) string {
	switch {
	case bmi < bmiUnderweightMax:
		return "Underweight"
	case bmi < bmiNormalMax:
		return "Normal"
	case bmi < bmiOverweightMax:
		return "Overweight"
	default:
		return "Obese"
	}
}

// computeLeanMass returns weight(kg) × (1 − bodyFat/100). ok=false when body
// fat is nil or not positive — the metric is undefined without a measurement.
func computeLeanMass(weightKG float64, bodyFatPct *float64) (float64, bool) {
	if bodyFatPct == nil || *bodyFatPct <= 0 {
		return 0, false
	}
	return weightKG * (1 - *bodyFatPct/100), true
}

// bmiBand is one colored reference band behind the BMI chart. Min/Max are
// nil at the unbounded ends.
type bmiBand struct {
	Label string   `json:"label"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Color string   `json:"color"`
}

// bmiBands returns the fixed band definitions, used both for chart reference
// areas and per-point dot coloring. Order is ascending by range.
func bmiBands() []bmiBand {
	under := bmiUnderweightMax
	normal := float64(bmiNormalMax)
	over := float64(bmiOverweightMax)
	return []bmiBand{
		{Label: "Underweight", Min: nil, Max: &under, Color: "#60a5fa"},
		{Label: "Normal", Min: &under, Max: &normal, Color: "#4ade80"},
		{Label: "Overweight", Min: &normal, Max: &over, Color: "#facc15"},
		{Label: "Obese", Min: &over, Max: nil, Color: "#f87171"},
	}
}

// round1 and round2 round to 1 and 2 decimal places for display values.
// math.Round (not truncation) avoids systematic under-reporting.
func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
