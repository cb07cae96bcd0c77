package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// libraryItem is one entry in the static content library. Detail holds the
// section-specific secondary line (duration, category, or reward).
type libraryItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Image  string `json:"image"`
}

// libraryCatalog is the static content library, grouped into the four
// dashboard tabs. Content is curated, not user-generated, so it ships with
// the binary — same approach as the frontend it replaced.
var libraryCatalog = map[string][]libraryItem{
	"workouts": {
		{Title: "Full Body Strength", Detail: "45 min", Image: "https://picsum.photos/600/400?random=1"},
		{Title: "Morning Yoga Flow", Detail: "30 min", Image: "https://picsum.photos/600/400?random=2"},
		{Title: "HIIT Cardio Blast", Detail: "20 min", Image: "https://picsum.photos/600/400?random=3"},
	},
	"diets": {
		{Title: "Clean Eating Principles", Detail: "Nutrition Plan", Image: "https://picsum.photos/600/400?random=4"},
		{Title: "Healthy Smoothie Recipes", Detail: "Recipe Guide", Image: "https://picsum.photos/600/400?random=5"},
		{Title: "Weekly Meal Prep", Detail: "Guide", Image: "https://picsum.photos/600/400?random=6"},
	},
	"meditations": {
		{Title: "Mindfulness for Beginners", Detail: "10 min", Image: "https://picsum.photos/600/400?random=7"},
		{Title: "Stress Relief Session", Detail: "15 min", Image: "https://picsum.photos/600/400?random=8"},
		{Title: "Deep Sleep Meditation", Detail: "20 min", Image: "https://picsum.photos/600/400?random=9"},
	},
	"challenges": {
		{Title: "30-Day Fitness Challenge", Detail: "Exclusive Badge", Image: "https://picsum.photos/600/400?random=10"},
		{Title: "Mindfulness Month", Detail: "Profile Theme", Image: "https://picsum.photos/600/400?random=11"},
		{Title: "Hydration Hero", Detail: "100 Points", Image: "https://picsum.photos/600/400?random=12"},
	},
}

// achievement is one badge in the fixed achievements catalog.
type achievement struct {
	Title    string `json:"title"`
	Unlocked bool   `json:"unlocked"`
}

var achievementsCatalog = []achievement{
	{Title: "Fitness Pro", Unlocked: true},
	{Title: "Early Bird", Unlocked: true},
	{Title: "Perfect Week", Unlocked: true},
	{Title: "Streak Master", Unlocked: false},
	{Title: "Challenge Champ", Unlocked: false},
	{Title: "Mindful Master", Unlocked: true},
}

// getLibrary returns the content library grouped by tab. GET /api/library.
func (h *Handler) getLibrary(c *gin.Context) {
	c.JSON(http.StatusOK, libraryCatalog)
}

// getAchievements returns the achievements catalog. GET /api/achievements.
func (h *Handler) getAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, achievementsCatalog)
}
