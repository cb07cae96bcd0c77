package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// minSuggestInputLen is the minimum length of the free-text input after
// trimming. Shorter inputs can't describe ingredients or equipment.
const minSuggestInputLen = 3

/* ─── Request / Response types ───────────────────────────────────────── */

// suggestMealRequest is the body for POST /api/suggest/meal.
type suggestMealRequest struct {
	Ingredients string `json:"ingredients"`
}

// suggestWorkoutRequest is the body for POST /api/suggest/workout.
type suggestWorkoutRequest struct {
	Equipment string `json:"equipment"`
}

// mealOption is one of the two meal variants the AI returns. Recipe is
// markdown; Details is a short weight/calories summary line.
type mealOption struct {
	Recipe  string `json:"recipe"`
	Details string `json:"details"`
}

// mealPlanResponse is the structured meal suggestion: a lighter variant for
// weight loss and a heavier one for muscle gain.
type mealPlanResponse struct {
	LessCaloricOption mealOption `json:"less_caloric_option"`
	MoreCaloricOption mealOption `json:"more_caloric_option"`
}

// workoutPlanResponse is the structured workout suggestion.
type workoutPlanResponse struct {
	WorkoutPlan string `json:"workout_plan"`
}

/* ─── OpenAI prompt constants ────────────────────────────────────────── */

const mealSystemPrompt = `You are a nutritionist and chef. The user will give you a comma-separated list of ingredients they have available.
Create two versions of one healthy meal using mainly those ingredients:
1. A LOWER-calorie option, for users aiming at weight loss.
2. A HIGHER-calorie option, for users aiming at muscle gain, adjusting quantities or adding/removing ingredients.

Return a JSON object with:
- "less_caloric_option": {"recipe": string (full recipe in markdown, ingredients and preparation steps), "details": string (total weight and calories, e.g. "Weight: 400g, Calories: 550kcal")}
- "more_caloric_option": same shape as above

Return only valid JSON, no explanation.`

const workoutSystemPrompt = `You are a personal trainer. The user will give you a comma-separated list of workout equipment they have available.
Suggest a workout plan that uses only that equipment. Include specific exercises with the number of sets and reps for each.

Return a JSON object with:
- "workout_plan": string (the full plan in markdown format)

Return only valid JSON, no explanation.`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model          string                 `json:"model"`
	Messages       []openAIMessage        `json:"messages"`
	Temperature    float64                `json:"temperature"`
	ResponseFormat map[string]interface{} `json:"response_format"`
}

// callOpenAI sends a chat completions request and returns the raw content string
// from the first choice. Uses raw net/http to avoid pulling in the OpenAI SDK.
func callOpenAI(ctx context.Context, messages []openAIMessage, baseURL string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	reqBody := openAIRequest{
		Model:       "gpt-4o-mini",
		Messages:    messages,
		Temperature: 0.7,
		ResponseFormat: map[string]interface{}{
			"type": "json_object",
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Parse the response to extract choices[0].message.content
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return result.Choices[0].Message.Content, nil
}

// validSuggestInput reports whether the trimmed free text is long enough to
// build a prompt from.
func validSuggestInput(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) >= minSuggestInputLen
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// suggestMealPlan handles POST /api/suggest/meal.
// Forwards the ingredient list to OpenAI and returns the two-variant meal
// plan. Each submission is a fresh, independent request — no retries, no
// caching; failures surface as one generic retryable error.
func (h *Handler) suggestMealPlan(c *gin.Context) {
	var req suggestMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ingredients, ok := validSuggestInput(req.Ingredients)
	if !ok {
		apiError(c, http.StatusBadRequest, "ingredients are required")
		return
	}

	messages := []openAIMessage{
		{Role: "system", Content: mealSystemPrompt},
		{Role: "user", Content: ingredients},
	}

	content, err := callOpenAI(c.Request.Context(), messages, h.openAIBaseURL)
	if err != nil {
		log.Errorf("[suggestMeal] OpenAI error: %v", err)
		suggestionsFailed.WithLabelValues("meal").Inc()
		apiError(c, http.StatusBadGateway, "suggestion service failed, please try again")
		return
	}

	var plan mealPlanResponse
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		log.Errorf("[suggestMeal] failed to parse response: %v", err)
		suggestionsFailed.WithLabelValues("meal").Inc()
		apiError(c, http.StatusBadGateway, "suggestion service failed, please try again")
		return
	}

	// Schema check: both variants must come back with a recipe and details.
	if plan.LessCaloricOption.Recipe == "" || plan.LessCaloricOption.Details == "" ||
		plan.MoreCaloricOption.Recipe == "" || plan.MoreCaloricOption.Details == "" {
		log.Errorf("[suggestMeal] incomplete plan in response: %q", content)
		suggestionsFailed.WithLabelValues("meal").Inc()
		apiError(c, http.StatusBadGateway, "suggestion service failed, please try again")
		return
	}

	suggestionsServed.WithLabelValues("meal").Inc()
	c.JSON(http.StatusOK, plan)
}

// suggestWorkoutPlan handles POST /api/suggest/workout.
// Same contract as suggestMealPlan but with the personal-trainer prompt and a
// single markdown plan in the response.
func (h *Handler) suggestWorkoutPlan(c *gin.Context) {
	var req suggestWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	equipment, ok := validSuggestInput(req.Equipment)
	if !ok {
		apiError(c, http.StatusBadRequest, "equipment is required")
		return
	}

	messages := []openAIMessage{
		{Role: "system", Content: workoutSystemPrompt},
		{Role: "user", Content: equipment},
	}

	content, err := callOpenAI(c.Request.Context(), messages, h.openAIBaseURL)
	if err != nil {
		log.Errorf("[suggestWorkout] OpenAI error: %v", err)
		suggestionsFailed.WithLabelValues("workout").Inc()
		apiError(c, http.StatusBadGateway, "suggestion service failed, please try again")
		return
	}

	var plan workoutPlanResponse
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		log.Errorf("[suggestWorkout] failed to parse response: %v", err)
		suggestionsFailed.WithLabelValues("workout").Inc()
		apiError(c, http.StatusBadGateway, "suggestion service failed, please try again")
		return
	}
	if strings.TrimSpace(plan.WorkoutPlan) == "" {
		log.Errorf("[suggestWorkout] empty plan in response: %q", content)
		suggestionsFailed.WithLabelValues("workout").Inc()
		apiError(c, http.StatusBadGateway, "suggestion service failed, please try again")
		return
	}

	suggestionsServed.WithLabelValues("workout").Inc()
	c.JSON(http.StatusOK, plan)
}
