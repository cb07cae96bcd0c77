package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// metricChart is one metric's render-ready payload: its points plus the
// padded vertical-axis domain.
type metricChart struct {
	Points []chartPoint `json:"points"`
	Domain [2]float64   `json:"domain"`
}

// chartsResponse is the body for GET /api/progress/charts. BMIBands ship with
// every response so the reference bands render even when the BMI series is
// empty. HasHeight tells the frontend whether to prompt for height instead of
// showing an empty BMI chart.
type chartsResponse struct {
	Weight    metricChart `json:"weight"`
	BMI       metricChart `json:"bmi"`
	LeanMass  metricChart `json:"lean_mass"`
	BodyFat   metricChart `json:"body_fat"`
	BMIBands  []bmiBand   `json:"bmi_bands"`
	HasHeight bool        `json:"has_height"`
}

// buildCharts derives the full chart payload from an ordered entry snapshot
// and the profile height. Pure — everything is recomputed from scratch on
// every call, so the output is always consistent with the stored entries.
func buildCharts(entries []progressEntry, heightM *float64) chartsResponse {
	s := buildSeries(entries, heightM)
	return chartsResponse{
		Weight:    metricChart{Points: s.Weight, Domain: seriesDomain(seriesValues(s.Weight), weightDomainSpec)},
		BMI:       metricChart{Points: s.BMI, Domain: seriesDomain(seriesValues(s.BMI), bmiDomainSpec)},
		LeanMass:  metricChart{Points: s.LeanMass, Domain: seriesDomain(seriesValues(s.LeanMass), weightDomainSpec)},
		BodyFat:   metricChart{Points: s.BodyFat, Domain: seriesDomain(seriesValues(s.BodyFat), bodyFatDomainSpec)},
		BMIBands:  bmiBands(),
		HasHeight: heightM != nil && *heightM > 0,
	}
}

// getProgressCharts returns derived metric series and axis domains for the
// authenticated user. GET /api/progress/charts?start=YYYY-MM-DD&end=YYYY-MM-DD.
// Both params optional; omitting them charts the full history.
func (h *Handler) getProgressCharts(c *gin.Context) {
	userID := c.GetInt("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start != "" {
		if _, err := time.Parse("2006-01-02", start); err != nil {
			apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
			return
		}
	}
	if end != "" {
		if _, err := time.Parse("2006-01-02", end); err != nil {
			apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
			return
		}
	}
	if start != "" && end != "" && start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	entries, err := h.fetchEntries(c, userID, start, end)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch progress log")
		return
	}

	profile, err := queryOne[healthProfile](h.db, c,
		"SELECT * FROM health_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, buildCharts(entries, profile.HeightM))
}
