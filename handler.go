package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Handler holds shared dependencies (db pool, config) for all route handlers.
type Handler struct {
	db            *pgxpool.Pool
	openAIBaseURL string // Base URL for the OpenAI API (overridable for tests)
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		log.Errorf("[queryOne] query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && err != pgx.ErrNoRows {
		log.Errorf("[queryOne] scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		log.Errorf("[queryMany] query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Errorf("[queryMany] scan error: %v", err)
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn)
// because serverless Postgres providers close idle connections after a few
// minutes.
func getDBPool() *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse DB URL: %v\n", err)
		os.Exit(1)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	log.Println("DB pool ready")
	return pool
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/register", h.register)
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/progress-log", h.getProgressLog)
	api.POST("/progress-log", h.upsertProgressEntry)
	api.PUT("/progress-log/:id", h.updateProgressEntry)
	api.DELETE("/progress-log/:id", h.deleteProgressEntry)
	api.GET("/progress/charts", h.getProgressCharts)
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.POST("/profile/password", h.changePassword)
	api.GET("/quiz", h.getQuiz)
	api.PUT("/quiz", h.putQuiz)
	api.GET("/posts", h.getPosts)
	api.POST("/posts", h.createPost)
	api.GET("/library", h.getLibrary)
	api.GET("/achievements", h.getAchievements)
	api.POST("/suggest/meal", h.suggestMealPlan)
	api.POST("/suggest/workout", h.suggestWorkoutPlan)
}
