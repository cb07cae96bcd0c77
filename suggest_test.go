package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupSuggestTest creates a Gin engine with a mock OpenAI server and returns
// the router and a function to set the mock response. No DB needed.
func setupSuggestTest() (*gin.Engine, *httptest.Server, func(int, interface{})) {
	var mockStatus int
	var mockBody interface{}

	mockOpenAI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mockStatus)
		json.NewEncoder(w).Encode(mockBody)
	}))

	gin.SetMode(gin.TestMode)
	h := Handler{openAIBaseURL: mockOpenAI.URL}
	router := gin.New()
	// Skip auth middleware for tests — set a dummy user_id
	withUser := func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	}
	router.POST("/api/suggest/meal", withUser, h.suggestMealPlan)
	router.POST("/api/suggest/workout", withUser, h.suggestWorkoutPlan)

	setMock := func(status int, body interface{}) {
		mockStatus = status
		mockBody = body
	}

	return router, mockOpenAI, setMock
}

// doSuggestRequest sends a POST to the given suggest endpoint.
func doSuggestRequest(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// openAIChatResponse wraps a content string in the OpenAI chat completions
// response shape (choices[0].message.content).
func openAIChatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"content": content,
				},
			},
		},
	}
}

func TestSuggestMeal_Success(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest()
	defer mockServer.Close()

	plan := `{
		"less_caloric_option": {"recipe": "## Grilled Chicken Salad\n...", "details": "Weight: 350g, Calories: 420kcal"},
		"more_caloric_option": {"recipe": "## Chicken Rice Bowl\n...", "details": "Weight: 550g, Calories: 780kcal"}
	}`
	setMock(http.StatusOK, openAIChatResponse(plan))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, "/api/suggest/meal", `{"ingredients":"chicken, rice, tomatoes"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp mealPlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !strings.Contains(resp.LessCaloricOption.Recipe, "Grilled Chicken Salad") {
		t.Errorf("unexpected lighter recipe: %q", resp.LessCaloricOption.Recipe)
	}
	if resp.MoreCaloricOption.Details != "Weight: 550g, Calories: 780kcal" {
		t.Errorf("unexpected heavier details: %q", resp.MoreCaloricOption.Details)
	}
}

func TestSuggestWorkout_Success(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest()
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"workout_plan":"## Day 1\n- Goblet squats 3x12\n- Rows 3x10"}`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, "/api/suggest/workout", `{"equipment":"dumbbells, pull-up bar"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp workoutPlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !strings.Contains(resp.WorkoutPlan, "Goblet squats") {
		t.Errorf("unexpected plan: %q", resp.WorkoutPlan)
	}
}

func TestSuggestMeal_EmptyIngredients(t *testing.T) {
	router, mockServer, _ := setupSuggestTest()
	defer mockServer.Close()

	for _, body := range []string{`{"ingredients":""}`, `{"ingredients":"  "}`, `{"ingredients":"ab"}`} {
		w := doSuggestRequest(router, "/api/suggest/meal", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d: %s", body, w.Code, w.Body.String())
		}
	}
}

func TestSuggestWorkout_EmptyEquipment(t *testing.T) {
	router, mockServer, _ := setupSuggestTest()
	defer mockServer.Close()

	w := doSuggestRequest(router, "/api/suggest/workout", `{"equipment":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSuggestMeal_OpenAIError500(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest()
	defer mockServer.Close()

	setMock(http.StatusInternalServerError, map[string]string{"error": "server error"})
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, "/api/suggest/meal", `{"ingredients":"eggs, spinach"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "suggestion service failed, please try again" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestSuggestMeal_MalformedJSON(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest()
	defer mockServer.Close()

	// The AI returns something that isn't valid JSON
	setMock(http.StatusOK, openAIChatResponse(`not valid json at all`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, "/api/suggest/meal", `{"ingredients":"eggs, spinach"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}

// TestSuggestMeal_IncompleteSchema: valid JSON missing one of the two
// required variants must fail schema validation, not pass through.
func TestSuggestMeal_IncompleteSchema(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest()
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"less_caloric_option":{"recipe":"## Salad","details":"Weight: 300g, Calories: 350kcal"}}`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, "/api/suggest/meal", `{"ingredients":"eggs, spinach"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSuggestWorkout_EmptyPlan(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest()
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"workout_plan":"  "}`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, "/api/suggest/workout", `{"equipment":"kettlebell"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}
