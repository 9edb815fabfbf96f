package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/models"
	"github.com/sbilibin2017/gw-forum/internal/services"
)

// CategoryManager exposes category reads and creation.
type CategoryManager interface {
	ListCategories(ctx context.Context) ([]models.CategoryDB, error)
	GetCategoryPosts(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.PostDB, error)
	CreateCategory(ctx context.Context, title string) (uuid.UUID, error)
}

// CreateCategoryRequest represents the JSON body for creating a category
// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	// Single-word category title
	// required: true
	// default: golang
	Title string `json:"title"`
}

// CreateCategoryResponse represents the response after creating a category
// swagger:model CreateCategoryResponse
type CreateCategoryResponse struct {
	// Identifier of the created category
	ID uuid.UUID `json:"id"`
}

// NewCategoryListHandler returns an HTTP handler listing all categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB
// @Router /categories [get]
func NewCategoryListHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}

// NewCategoryPostsHandler returns an HTTP handler listing a category's posts.
// @Summary List posts of a category
// @Tags categories
// @Produce json
// @Param id path string true "Category UUID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.PostDB
// @Failure 404 {object} handlers.PostErrorResponse "Unknown category"
// @Router /category/{id} [get]
func NewCategoryPostsHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Resource not found"})
			return
		}
		limit, offset := parseLimitOffset(r)

		posts, err := svc.GetCategoryPosts(r.Context(), categoryID, limit, offset)
		if err != nil {
			writePostError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}

// NewCategoryCreateHandler returns an HTTP handler creating a category.
// @Summary Create a category
// @Description Titles are unique and must be a single word.
// @Tags categories
// @Accept json
// @Produce json
// @Param createCategoryRequest body handlers.CreateCategoryRequest true "New category"
// @Success 201 {object} handlers.CreateCategoryResponse
// @Failure 400 {object} handlers.PostErrorResponse "Taken or multi-word title"
// @Router /category [post]
// @Security BearerAuth
func NewCategoryCreateHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "invalid request body"})
			return
		}

		categoryID, err := svc.CreateCategory(r.Context(), req.Title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Category with this title already exists"})
			case errors.Is(err, services.ErrInvalidCategoryTitle):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Category title must be a single word"})
			default:
				writePostError(w, err)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateCategoryResponse{ID: categoryID})
	}
}
