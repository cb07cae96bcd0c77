package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// quizQuestion is one onboarding question with its valid option letters.
// The catalog is fixed; answers are validated against it on write.
type quizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

var quizQuestions = []quizQuestion{
	{ID: "q1", Question: "What is your main goal right now?", Options: []string{"A", "B", "C"}},
	{ID: "q2", Question: "How do you feel about physical training?", Options: []string{"A", "B", "C"}},
	{ID: "q3", Question: "Where do you plan to work out?", Options: []string{"A", "B", "C"}},
	{ID: "q4", Question: "What is your biggest nutrition challenge?", Options: []string{"A", "B", "C"}},
	{ID: "q5", Question: "What matters most for staying motivated?", Options: []string{"A", "B", "C"}},
}

// planTitles maps the winning answer letter to the recommended plan.
var planTitles = map[string]string{
	"A": "Weekly Plan (Starter)",
	"B": "Monthly Plan (Standard)",
	"C": "Premium Plan",
}

// recommendPlan picks the plan for the most frequent answer letter. Ties
// resolve to the earlier letter (A before B before C) so a split result
// recommends the entry tier rather than over-selling. Returns "" for no
// answers.
func recommendPlan(answers map[string]string) string {
	counts := map[string]int{}
	for _, a := range answers {
		counts[a]++
	}
	best := ""
	for _, letter := range []string{"A", "B", "C"} {
		if best == "" || counts[letter] > counts[best] {
			if counts[letter] > 0 {
				best = letter
			}
		}
	}
	if best == "" {
		return ""
	}
	return planTitles[best]
}

// validQuizAnswer reports whether questionID exists in the catalog and answer
// is one of its option letters.
func validQuizAnswer(questionID, answer string) bool {
	for _, q := range quizQuestions {
		if q.ID != questionID {
			continue
		}
		for _, opt := range q.Options {
			if opt == answer {
				return true
			}
		}
		return false
	}
	return false
}

// quizResponse is the body for GET /api/quiz and the reply to PUT /api/quiz.
type quizResponse struct {
	Answers         map[string]string `json:"answers"`
	RecommendedPlan string            `json:"recommended_plan"`
}

// getQuiz returns the user's saved answers and the derived plan recommendation.
// GET /api/quiz. Users who never took the quiz get empty answers and no plan.
func (h *Handler) getQuiz(c *gin.Context) {
	userID := c.GetInt("user_id")

	rows, err := queryMany[quizAnswer](h.db, c,
		"SELECT * FROM quiz_answers WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch quiz answers")
		return
	}

	answers := map[string]string{}
	for _, row := range rows {
		answers[row.QuestionID] = row.Answer
	}

	c.JSON(http.StatusOK, quizResponse{Answers: answers, RecommendedPlan: recommendPlan(answers)})
}

// putQuiz validates and upserts the user's quiz answers, one row per
// question. PUT /api/quiz. Body: { "answers": { "q1": "A", ... } }.
// Re-taking the quiz overwrites previous answers for the submitted questions.
func (h *Handler) putQuiz(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.Answers) == 0 {
		apiError(c, http.StatusBadRequest, "answers are required")
		return
	}
	for qid, answer := range body.Answers {
		if !validQuizAnswer(qid, answer) {
			apiError(c, http.StatusBadRequest, "unknown question or answer: "+qid)
			return
		}
	}

	tx, err := h.db.Begin(c)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save quiz answers")
		return
	}
	defer tx.Rollback(c)

	for qid, answer := range body.Answers {
		if _, err := tx.Exec(c,
			`INSERT INTO quiz_answers (user_id, question_id, answer)
			 VALUES (@userID, @questionID, @answer)
			 ON CONFLICT (user_id, question_id) DO UPDATE SET answer = EXCLUDED.answer`,
			pgx.NamedArgs{"userID": userID, "questionID": qid, "answer": answer}); err != nil {
			log.Errorf("[putQuiz] upsert failed for user %d question %s: %v", userID, qid, err)
			apiError(c, http.StatusInternalServerError, "failed to save quiz answers")
			return
		}
	}

	if err := tx.Commit(c); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save quiz answers")
		return
	}

	c.JSON(http.StatusOK, quizResponse{Answers: body.Answers, RecommendedPlan: recommendPlan(body.Answers)})
}
