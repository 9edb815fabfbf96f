package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/middlewares"
	"github.com/sbilibin2017/gw-forum/internal/models"
	"github.com/sbilibin2017/gw-forum/internal/services"
)

// PostManager exposes post reads and author-gated writes.
type PostManager interface {
	ListPosts(ctx context.Context, limit, offset int) ([]models.PostDB, error)
	ListPostsByAuthor(ctx context.Context, username string, limit, offset int) ([]models.PostDB, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	CreatePost(ctx context.Context, categoryID, authorID uuid.UUID, title, content string) (uuid.UUID, error)
	UpdatePost(ctx context.Context, postID, actorID uuid.UUID, title, content string) error
	DeletePost(ctx context.Context, postID, actorID uuid.UUID) error
}

// CreatePostRequest represents the JSON body for creating a post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Owning category
	// required: true
	CategoryID uuid.UUID `json:"category_id"`

	// Post title
	// required: true
	// default: My first post
	Title string `json:"title"`

	// Post body
	// required: true
	Content string `json:"content"`
}

// UpdatePostRequest represents the JSON body for editing a post
// swagger:model UpdatePostRequest
type UpdatePostRequest struct {
	// New title
	// required: true
	Title string `json:"title"`

	// New body
	// required: true
	Content string `json:"content"`
}

// CreatePostResponse represents the response after creating a post
// swagger:model CreatePostResponse
type CreatePostResponse struct {
	// Identifier of the created post
	ID uuid.UUID `json:"id"`
}

// PostErrorResponse represents an error response on post operations
// swagger:model PostErrorResponse
type PostErrorResponse struct {
	// Error message
	// default: Resource not found
	Error string `json:"error"`
}

// parseLimitOffset reads optional limit/offset query params with
// sensible defaults for list endpoints.
func parseLimitOffset(r *http.Request) (int, int) {
	limit := 20
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// NewPostListHandler returns an HTTP handler listing posts newest first.
// @Summary List posts
// @Tags posts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.PostDB
// @Router /posts [get]
func NewPostListHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parseLimitOffset(r)

		posts, err := svc.ListPosts(r.Context(), limit, offset)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}

// NewUserPostsHandler returns an HTTP handler listing a user's posts.
// @Summary List posts by author
// @Tags posts
// @Produce json
// @Param username path string true "Author username"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.PostDB
// @Failure 404 {object} handlers.PostErrorResponse "Unknown user"
// @Router /user/{username}/posts [get]
func NewUserPostsHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		limit, offset := parseLimitOffset(r)

		posts, err := svc.ListPostsByAuthor(r.Context(), username, limit, offset)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}

// NewPostGetHandler returns an HTTP handler fetching a single post.
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path string true "Post UUID"
// @Success 200 {object} models.PostDB
// @Failure 404 {object} handlers.PostErrorResponse
// @Router /post/{id} [get]
func NewPostGetHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}

		post, err := svc.GetPost(r.Context(), postID)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(post)
	}
}

// NewPostCreateHandler returns an HTTP handler creating a post in an
// existing category.
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param createPostRequest body handlers.CreatePostRequest true "New post"
// @Success 201 {object} handlers.CreatePostResponse
// @Failure 404 {object} handlers.PostErrorResponse "Unknown category"
// @Router /post [post]
// @Security BearerAuth
func NewPostCreateHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Content == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "invalid request body"})
			return
		}

		postID, err := svc.CreatePost(ctx, req.CategoryID, userID, req.Title, req.Content)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreatePostResponse{ID: postID})
	}
}

// NewPostUpdateHandler returns an HTTP handler editing a post. Only the
// author or an administrator may edit.
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post UUID"
// @Param updatePostRequest body handlers.UpdatePostRequest true "New title and body"
// @Success 200 {object} models.PostDB
// @Failure 403 {object} handlers.PostErrorResponse "Not the author"
// @Failure 404 {object} handlers.PostErrorResponse
// @Router /post/{id} [put]
// @Security BearerAuth
func NewPostUpdateHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}

		var req UpdatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Content == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.UpdatePost(ctx, postID, userID, req.Title, req.Content); err != nil {
			writePostError(w, err)
			return
		}

		post, err := svc.GetPost(ctx, postID)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(post)
	}
}

// NewPostDeleteHandler returns an HTTP handler deleting a post together
// with its comments and ratings.
// @Summary Delete a post
// @Tags posts
// @Param id path string true "Post UUID"
// @Success 204 {string} string "Deleted"
// @Failure 403 {object} handlers.PostErrorResponse "Not the author"
// @Failure 404 {object} handlers.PostErrorResponse
// @Router /post/{id} [delete]
// @Security BearerAuth
func NewPostDeleteHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}

		if err := svc.DeletePost(ctx, postID, userID); err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writePostError maps content errors to HTTP responses.
func writePostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
	case errors.Is(err, services.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(PostErrorResponse{Error: "Forbidden"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(PostErrorResponse{Error: "Internal server error"})
	}
}
