package main

// domainSpec holds the per-metric knobs for axis-range calculation.
type domainSpec struct {
	// defaultRange is returned for an empty series so the chart still renders
	// sensible gridlines (and, for BMI, the category bands).
	defaultRange [2]float64
	// constantPad is the absolute symmetric padding applied when every value
	// in the series is identical — a zero-height range would collapse the axis.
	constantPad float64
	// padFactor is the fraction of the raw value range added on each side.
	padFactor float64
	// floor is the lowest sensible axis value for the metric. The lower bound
	// never goes below it (weights and percentages never plot negative).
	floor float64
}

var (
	weightDomainSpec  = domainSpec{defaultRange: [2]float64{0, 100}, constantPad: 2, padFactor: 0.10, floor: 0}
	bodyFatDomainSpec = domainSpec{defaultRange: [2]float64{0, 50}, constantPad: 2, padFactor: 0.10, floor: 0}
	// BMI default covers all four category bands so reference areas render
	// with no data; floor 10 keeps the Underweight band visible.
	bmiDomainSpec = domainSpec{defaultRange: [2]float64{15, 35}, constantPad: 2, padFactor: 0.10, floor: 10}
)

// seriesDomain computes the [min, max] vertical-axis range for a series.
// Pure and deterministic: the same values always yield the same domain, so
// chart output is snapshot-testable. The padded range always contains every
// raw value, and a non-empty series always yields max > min.
func seriesDomain(values []float64, spec domainSpec) [2]float64 {
	if len(values) == 0 {
		return spec.defaultRange
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	pad := (max - min) * spec.padFactor
	if min == max {
		pad = spec.constantPad
	}

	lo := min - pad
	if lo < spec.floor {
		lo = spec.floor
	}
	return [2]float64{lo, max + pad}
}
