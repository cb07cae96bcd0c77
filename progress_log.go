package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// validateBodyFat checks an optional body-fat percentage. nil is fine (the
// field is optional); a provided value must be a plausible percentage.
func validateBodyFat(v *float64) bool {
	return v == nil || (*v > 0 && *v < 100)
}

// getProgressLog returns progress entries for the authenticated user in
// ascending date order. GET /api/progress-log?start=YYYY-MM-DD&end=YYYY-MM-DD.
// Both params are optional; omitting them returns the full history. Returns
// an empty array (not null) if no entries exist.
func (h *Handler) getProgressLog(c *gin.Context) {
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

	c.JSON(http.StatusOK, entries)
}

// fetchEntries loads a user's entries ascending by date, optionally bounded.
// Empty bounds are replaced with sentinels so one query covers every case.
// Every series built downstream relies on this ascending order.
func (h *Handler) fetchEntries(c *gin.Context, userID int, start, end string) ([]progressEntry, error) {
	if start == "" {
		start = "0001-01-01"
	}
	if end == "" {
		end = "9999-12-31"
	}
	entries, err := queryMany[progressEntry](h.db, c,
		`SELECT * FROM progress_log
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		return nil, err
	}
	// Ensure empty array (not null) in JSON
	if entries == nil {
		entries = []progressEntry{}
	}
	return entries, nil
}

// upsertProgressEntry creates or overwrites the entry for the given date.
// POST /api/progress-log. Body: { "date", "weight_kg", "body_fat_pct"? }.
// The UNIQUE(user_id, date) constraint means posting the same date updates in
// place — one entry per calendar date, never duplicates.
func (h *Handler) upsertProgressEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body upsertProgressEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		apiError(c, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.WeightKG <= 0 || body.WeightKG > 500 {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 0 and 500")
		return
	}
	if !validateBodyFat(body.BodyFatPct) {
		apiError(c, http.StatusBadRequest, "body_fat_pct must be between 0 and 100")
		return
	}

	entry, err := queryOne[progressEntry](h.db, c,
		`INSERT INTO progress_log (user_id, date, weight_kg, body_fat_pct)
		 VALUES (@userID, @date, @weightKG, @bodyFatPct)
		 ON CONFLICT (user_id, date) DO UPDATE
		   SET weight_kg = EXCLUDED.weight_kg,
		       body_fat_pct = EXCLUDED.body_fat_pct,
		       updated_at = now()
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "date": body.Date, "weightKG": body.WeightKG, "bodyFatPct": body.BodyFatPct})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save progress entry")
		return
	}

	progressEntriesWritten.Inc()
	c.JSON(http.StatusCreated, entry)
}

// updateProgressEntry partially updates an existing entry.
// PUT /api/progress-log/:id. Body: { "date"?, "weight_kg"?, "body_fat_pct"? }.
// Changing the date re-keys the entry: any entry already occupying the target
// (user, date) is removed first, so the move overwrites instead of failing the
// unique constraint — same outcome as deleting and re-posting.
func (h *Handler) updateProgressEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	var body updateProgressEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date != nil {
		if _, err := time.Parse("2006-01-02", *body.Date); err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}
	if body.WeightKG != nil && (*body.WeightKG <= 0 || *body.WeightKG > 500) {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 0 and 500")
		return
	}
	if !validateBodyFat(body.BodyFatPct) {
		apiError(c, http.StatusBadRequest, "body_fat_pct must be between 0 and 100")
		return
	}

	tx, err := h.db.Begin(c)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update progress entry")
		return
	}
	defer tx.Rollback(c)

	if body.Date != nil {
		if _, err := tx.Exec(c,
			"DELETE FROM progress_log WHERE user_id = @userID AND date = @date AND id <> @id",
			pgx.NamedArgs{"userID": userID, "date": *body.Date, "id": id}); err != nil {
			apiError(c, http.StatusInternalServerError, "failed to update progress entry")
			return
		}
	}

	rows, err := tx.Query(c,
		`UPDATE progress_log SET
			date         = COALESCE(@date, date),
			weight_kg    = COALESCE(@weightKG, weight_kg),
			body_fat_pct = COALESCE(@bodyFatPct, body_fat_pct),
			updated_at   = now()
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{"id": id, "userID": userID, "date": body.Date, "weightKG": body.WeightKG, "bodyFatPct": body.BodyFatPct})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update progress entry")
		return
	}
	entry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[progressEntry])
	if err != nil {
		// Distinguish a missing row from a real DB failure so callers get an
		// actionable status code rather than a misleading 404.
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "progress entry not found")
		} else {
			log.Errorf("[updateProgressEntry] scan error: %v", err)
			apiError(c, http.StatusInternalServerError, "failed to update progress entry")
		}
		return
	}

	if err := tx.Commit(c); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update progress entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// deleteProgressEntry removes a progress entry by ID.
// DELETE /api/progress-log/:id. Returns 204 on success, 404 if not found.
// Ownership is enforced by requiring both id and user_id to match.
func (h *Handler) deleteProgressEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	result, err := h.db.Exec(c,
		"DELETE FROM progress_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete progress entry")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "progress entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}
