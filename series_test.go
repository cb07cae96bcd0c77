package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entryOn builds a progressEntry for tests. bodyFat <= 0 means "not measured".
func entryOn(date string, weightKG, bodyFat float64) progressEntry {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	e := progressEntry{Date: DateOnly{t}, WeightKG: weightKG}
	if bodyFat > 0 {
		e.BodyFatPct = &bodyFat
	}
	return e
}

func floatPtr(v float64) *float64 { return &v }

// TestBuildSeries_Scenario is the canonical two-entry scenario: weight-only
// entry followed by a weight+body-fat entry, with height set.
func TestBuildSeries_Scenario(t *testing.T) {
	entries := []progressEntry{
		entryOn("2024-01-01", 80, 0),
		entryOn("2024-02-01", 76, 20),
	}

	s := buildSeries(entries, floatPtr(1.80))

	require.Len(t, s.Weight, 2)
	assert.Equal(t, 80.0, s.Weight[0].Value)
	assert.Equal(t, 76.0, s.Weight[1].Value)

	require.Len(t, s.BMI, 2)
	assert.Equal(t, 24.69, s.BMI[0].Value)
	assert.Equal(t, 23.46, s.BMI[1].Value)
	assert.Equal(t, "Normal", s.BMI[0].Category)
	assert.Equal(t, "Normal", s.BMI[1].Category)

	require.Len(t, s.LeanMass, 1)
	assert.Equal(t, 60.8, s.LeanMass[0].Value)

	require.Len(t, s.BodyFat, 1)
	assert.Equal(t, 20.0, s.BodyFat[0].Value)
}

func TestBuildSeries_Labels(t *testing.T) {
	s := buildSeries([]progressEntry{entryOn("2024-02-01", 76, 0)}, nil)
	require.Len(t, s.Weight, 1)
	assert.Equal(t, "Feb 1", s.Weight[0].Label)
	assert.Equal(t, "February 1, 2024", s.Weight[0].FullDate)
}

// TestBuildSeries_NoHeight: without a height the BMI series is empty no
// matter how many entries exist; the other series are unaffected.
func TestBuildSeries_NoHeight(t *testing.T) {
	entries := []progressEntry{
		entryOn("2024-01-01", 80, 22),
		entryOn("2024-01-02", 79.5, 0),
		entryOn("2024-01-03", 79, 21),
	}

	s := buildSeries(entries, nil)
	assert.Empty(t, s.BMI)
	assert.Len(t, s.Weight, 3)
	assert.Len(t, s.BodyFat, 2)

	s = buildSeries(entries, floatPtr(0))
	assert.Empty(t, s.BMI, "zero height behaves like no height")
}

// TestBuildSeries_LengthInvariants: body fat and lean mass always pair up and
// never exceed the weight series; BMI is all-or-nothing on height.
func TestBuildSeries_LengthInvariants(t *testing.T) {
	entries := []progressEntry{
		entryOn("2024-01-01", 80, 0),
		entryOn("2024-01-05", 79, 24),
		entryOn("2024-01-09", 78.5, 0),
		entryOn("2024-01-12", 78, 23.1),
		entryOn("2024-01-20", 77, 22.8),
	}

	for _, height := range []*float64{nil, floatPtr(1.75)} {
		s := buildSeries(entries, height)
		assert.Equal(t, len(s.BodyFat), len(s.LeanMass))
		assert.LessOrEqual(t, len(s.BodyFat), len(s.Weight))
		if height == nil {
			assert.Empty(t, s.BMI)
		} else {
			assert.Len(t, s.BMI, len(s.Weight))
		}
	}
}

// TestBuildSeries_PreservesOrder: ascending input order must survive into
// every series — the builder never re-sorts.
func TestBuildSeries_PreservesOrder(t *testing.T) {
	entries := []progressEntry{
		entryOn("2024-01-01", 82, 25),
		entryOn("2024-01-08", 81, 24.5),
		entryOn("2024-01-15", 80.2, 24),
		entryOn("2024-01-22", 79.9, 23.8),
	}

	s := buildSeries(entries, floatPtr(1.70))
	for _, series := range [][]chartPoint{s.Weight, s.BMI, s.LeanMass, s.BodyFat} {
		for i := 1; i < len(series); i++ {
			prev, err := time.Parse(longDateFormat, series[i-1].FullDate)
			require.NoError(t, err)
			cur, err := time.Parse(longDateFormat, series[i].FullDate)
			require.NoError(t, err)
			assert.True(t, prev.Before(cur), "series out of order at %d", i)
		}
	}
}

// TestBuildSeries_Empty: no entries produce four empty, non-nil series so the
// JSON response renders [] and callers can show a no-data state.
func TestBuildSeries_Empty(t *testing.T) {
	s := buildSeries(nil, floatPtr(1.80))
	require.NotNil(t, s.Weight)
	require.NotNil(t, s.BMI)
	require.NotNil(t, s.LeanMass)
	require.NotNil(t, s.BodyFat)
	assert.Empty(t, s.Weight)
	assert.Empty(t, s.BMI)
	assert.Empty(t, s.LeanMass)
	assert.Empty(t, s.BodyFat)
}

// TestBuildCharts_Response: the charts payload glues series, domains, and
// bands together; domains must contain their series values.
func TestBuildCharts_Response(t *testing.T) {
	entries := []progressEntry{
		entryOn("2024-01-01", 80, 0),
		entryOn("2024-02-01", 76, 20),
	}

	resp := buildCharts(entries, floatPtr(1.80))

	assert.True(t, resp.HasHeight)
	assert.Len(t, resp.BMIBands, 4)

	for _, chart := range []metricChart{resp.Weight, resp.BMI, resp.LeanMass, resp.BodyFat} {
		for _, p := range chart.Points {
			assert.LessOrEqual(t, chart.Domain[0], p.Value)
			assert.GreaterOrEqual(t, chart.Domain[1], p.Value)
		}
	}
}

func TestBuildCharts_NoData(t *testing.T) {
	resp := buildCharts(nil, nil)
	assert.False(t, resp.HasHeight)
	assert.Equal(t, [2]float64{0, 100}, resp.Weight.Domain)
	assert.Equal(t, [2]float64{15, 35}, resp.BMI.Domain)
	assert.Equal(t, [2]float64{0, 50}, resp.BodyFat.Domain)
	assert.Len(t, resp.BMIBands, 4, "bands ship even with no data so reference areas render")
}
