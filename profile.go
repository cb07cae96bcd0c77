package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// profileResponse combines account fields with the health profile.
type profileResponse struct {
	User    user          `json:"user"`
	Profile healthProfile `json:"profile"`
}

// getProfile returns the authenticated user's account and health profile.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	u, err := queryOne[user](h.db, c,
		"SELECT * FROM users WHERE id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "user not found")
		return
	}

	profile, err := queryOne[healthProfile](h.db, c,
		"SELECT * FROM health_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	c.JSON(http.StatusOK, profileResponse{User: u, Profile: profile})
}

// patchProfile updates only the provided health profile fields.
// PATCH /api/profile. Pointer fields in the request body distinguish "not
// provided" from zero — only non-nil fields get updated.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate height before saving — a zero or absurd height silently breaks
	// every future BMI computation with no visible error.
	if body.HeightM != nil && (*body.HeightM <= 0 || *body.HeightM >= 3) {
		apiError(c, http.StatusBadRequest, "height_m must be between 0 and 3 meters")
		return
	}
	if body.DisplayName != nil && strings.TrimSpace(*body.DisplayName) == "" {
		apiError(c, http.StatusBadRequest, "display_name must not be blank")
		return
	}

	// Build SET clause dynamically — only update fields the client actually sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if body.DisplayName != nil {
		setClauses = append(setClauses, "display_name = @displayName")
		args["displayName"] = strings.TrimSpace(*body.DisplayName)
	}
	if body.HeightM != nil {
		setClauses = append(setClauses, "height_m = @heightM")
		args["heightM"] = *body.HeightM
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := "UPDATE health_profiles SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"

	profile, err := queryOne[healthProfile](h.db, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// changePassword verifies the current password and stores a bcrypt hash of
// the new one. POST /api/profile/password.
func (h *Handler) changePassword(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body changePasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.NewPassword) < 6 {
		apiError(c, http.StatusBadRequest, "new password must be at least 6 characters")
		return
	}

	u, err := queryOne[user](h.db, c,
		"SELECT * FROM users WHERE id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "user not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(body.CurrentPassword)); err != nil {
		apiError(c, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update password")
		return
	}

	if _, err := h.db.Exec(c,
		"UPDATE users SET password = @password WHERE id = @userID",
		pgx.NamedArgs{"password": string(hash), "userID": userID}); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update password")
		return
	}

	c.Status(http.StatusNoContent)
}
