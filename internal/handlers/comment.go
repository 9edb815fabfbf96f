package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/middlewares"
	"github.com/sbilibin2017/gw-forum/internal/models"
)

// CommentManager exposes comment reads and author-gated writes.
type CommentManager interface {
	ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]models.CommentDB, error)
	CreateComment(ctx context.Context, postID, authorID uuid.UUID, text string) (uuid.UUID, error)
	UpdateComment(ctx context.Context, commentID, actorID uuid.UUID, text string) error
	DeleteComment(ctx context.Context, commentID, actorID uuid.UUID) error
}

// CommentRequest represents the JSON body for creating or editing a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment body, at most 1500 characters
	// required: true
	// default: Nice post!
	Text string `json:"text"`
}

// CreateCommentResponse represents the response after creating a comment
// swagger:model CreateCommentResponse
type CreateCommentResponse struct {
	// Identifier of the created comment
	ID uuid.UUID `json:"id"`
}

const maxCommentLength = 1500

// NewCommentListHandler returns an HTTP handler listing a post's
// comments oldest first.
// @Summary List comments of a post
// @Tags comments
// @Produce json
// @Param id path string true "Post UUID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.CommentDB
// @Failure 404 {object} handlers.PostErrorResponse "Unknown post"
// @Router /post/{id}/comments [get]
func NewCommentListHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}
		limit, offset := parseLimitOffset(r)

		comments, err := svc.ListComments(r.Context(), postID, limit, offset)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(comments)
	}
}

// NewCommentCreateHandler returns an HTTP handler adding a comment to a post.
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post UUID"
// @Param commentRequest body handlers.CommentRequest true "Comment body"
// @Success 201 {object} handlers.CreateCommentResponse
// @Failure 404 {object} handlers.PostErrorResponse "Unknown post"
// @Router /post/{id}/comment [post]
// @Security BearerAuth
func NewCommentCreateHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" || len(req.Text) > maxCommentLength {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "invalid request body"})
			return
		}

		commentID, err := svc.CreateComment(ctx, postID, userID, req.Text)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateCommentResponse{ID: commentID})
	}
}

// NewCommentUpdateHandler returns an HTTP handler editing a comment.
// Only the author or an administrator may edit.
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Param id path string true "Comment UUID"
// @Param commentRequest body handlers.CommentRequest true "New body"
// @Success 200 {string} string "Updated"
// @Failure 403 {object} handlers.PostErrorResponse "Not the author"
// @Failure 404 {object} handlers.PostErrorResponse
// @Router /comment/{id} [put]
// @Security BearerAuth
func NewCommentUpdateHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		commentID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" || len(req.Text) > maxCommentLength {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.UpdateComment(ctx, commentID, userID, req.Text); err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// NewCommentDeleteHandler returns an HTTP handler deleting a comment
// together with its ratings.
// @Summary Delete a comment
// @Tags comments
// @Param id path string true "Comment UUID"
// @Success 204 {string} string "Deleted"
// @Failure 403 {object} handlers.PostErrorResponse "Not the author"
// @Failure 404 {object} handlers.PostErrorResponse
// @Router /comment/{id} [delete]
// @Security BearerAuth
func NewCommentDeleteHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		commentID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}

		if err := svc.DeleteComment(ctx, commentID, userID); err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
