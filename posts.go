package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const (
	defaultPostsLimit = 20
	maxPostsLimit     = 100
	maxPostLength     = 1000
)

// getPosts returns community feed posts, newest first.
// GET /api/posts?limit=N&offset=N. Defaults: limit 20, offset 0.
// Author names fall back to the username when no display name is set.
func (h *Handler) getPosts(c *gin.Context) {
	limit := defaultPostsLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			apiError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxPostsLimit {
		limit = maxPostsLimit
	}

	offset := 0
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			apiError(c, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		offset = n
	}

	posts, err := queryMany[post](h.db, c,
		`SELECT p.id, p.user_id, p.content, p.created_at,
		        COALESCE(hp.display_name, u.username) AS author_name
		 FROM posts p
		 JOIN users u ON u.id = p.user_id
		 LEFT JOIN health_profiles hp ON hp.user_id = p.user_id
		 ORDER BY p.created_at DESC, p.id DESC
		 LIMIT @limit OFFSET @offset`,
		pgx.NamedArgs{"limit": limit, "offset": offset})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []post{}
	}

	c.JSON(http.StatusOK, posts)
}

// createPost adds a post to the community feed.
// POST /api/posts. Body: { "content": "..." }.
func (h *Handler) createPost(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	content := strings.TrimSpace(body.Content)
	if content == "" {
		apiError(c, http.StatusBadRequest, "content is required")
		return
	}
	if len(content) > maxPostLength {
		apiError(c, http.StatusBadRequest, "content must be at most 1000 characters")
		return
	}

	created, err := queryOne[post](h.db, c,
		`WITH inserted AS (
		    INSERT INTO posts (user_id, content)
		    VALUES (@userID, @content)
		    RETURNING id, user_id, content, created_at
		 )
		 SELECT i.id, i.user_id, i.content, i.created_at,
		        COALESCE(hp.display_name, u.username) AS author_name
		 FROM inserted i
		 JOIN users u ON u.id = i.user_id
		 LEFT JOIN health_profiles hp ON hp.user_id = i.user_id`,
		pgx.NamedArgs{"userID": userID, "content": content})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create post")
		return
	}

	c.JSON(http.StatusCreated, created)
}
