package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// progressEntry maps to progress_log. One row per (user, calendar date) —
// posting the same date again overwrites in place. BodyFatPct is nullable
// (pointer) so pgx can scan NULL and the lean-mass/body-fat series can skip it.
type progressEntry struct {
	ID         int        `json:"id" db:"id"`
	UserID     int        `json:"user_id" db:"user_id"`
	Date       DateOnly   `json:"date" db:"date"`
	WeightKG   float64    `json:"weight_kg" db:"weight_kg"`
	BodyFatPct *float64   `json:"body_fat_pct" db:"body_fat_pct"`
	CreatedAt  *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at" db:"updated_at"`
}

// healthProfile maps to health_profiles. One row per user, created empty at
// registration. HeightM is nullable — BMI stays undefined until it is set.
type healthProfile struct {
	UserID      int        `json:"user_id" db:"user_id"`
	DisplayName *string    `json:"display_name" db:"display_name"`
	HeightM     *float64   `json:"height_m" db:"height_m"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// post maps to posts. AuthorName is joined from users at read time and
// ignored by inserts (db:"author_name" only appears in the list query).
type post struct {
	ID         int        `json:"id" db:"id"`
	UserID     int        `json:"user_id" db:"user_id"`
	Content    string     `json:"content" db:"content"`
	AuthorName string     `json:"author_name" db:"author_name"`
	CreatedAt  *time.Time `json:"created_at" db:"created_at"`
}

// quizAnswer maps to quiz_answers. One row per (user, question).
type quizAnswer struct {
	UserID     int    `json:"-" db:"user_id"`
	QuestionID string `json:"question_id" db:"question_id"`
	Answer     string `json:"answer" db:"answer"`
}

/* ─── Request bodies ─────────────────────────────────────────────────── */

// upsertProgressEntryRequest is the body for POST /api/progress-log.
type upsertProgressEntryRequest struct {
	Date       string   `json:"date"`
	WeightKG   float64  `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
}

// updateProgressEntryRequest is the body for PUT /api/progress-log/:id.
// All fields are pointers — omitted fields keep their current values.
type updateProgressEntryRequest struct {
	Date       *string  `json:"date"`
	WeightKG   *float64 `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
}

// patchProfileRequest is the body for PATCH /api/profile. Pointer fields
// distinguish "not provided" from zero — only non-nil fields get written.
type patchProfileRequest struct {
	DisplayName *string  `json:"display_name"`
	HeightM     *float64 `json:"height_m"`
}

// changePasswordRequest is the body for POST /api/profile/password.
type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// registerRequest is the body for POST /api/register.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
