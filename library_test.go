package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupStaticTest returns a router serving the static catalog endpoints.
// No DB and no auth needed.
func setupStaticTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handler{}
	router := gin.New()
	router.GET("/api/library", h.getLibrary)
	router.GET("/api/achievements", h.getAchievements)
	return router
}

func TestGetLibrary_Sections(t *testing.T) {
	router := setupStaticTest()

	req := httptest.NewRequest("GET", "/api/library", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string][]libraryItem
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	for _, section := range []string{"workouts", "diets", "meditations", "challenges"} {
		items, ok := resp[section]
		if !ok {
			t.Errorf("missing section %q", section)
			continue
		}
		if len(items) == 0 {
			t.Errorf("section %q is empty", section)
		}
		for _, item := range items {
			if item.Title == "" || item.Detail == "" {
				t.Errorf("section %q has item with blank fields: %+v", section, item)
			}
		}
	}
}

func TestGetAchievements(t *testing.T) {
	router := setupStaticTest()

	req := httptest.NewRequest("GET", "/api/achievements", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []achievement
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp) != len(achievementsCatalog) {
		t.Errorf("expected %d achievements, got %d", len(achievementsCatalog), len(resp))
	}
}
