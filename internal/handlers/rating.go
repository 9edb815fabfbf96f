package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/middlewares"
	"github.com/sbilibin2017/gw-forum/internal/models"
	"github.com/sbilibin2017/gw-forum/internal/services"
)

// Rater toggles like/dislike marks and reads the current counts.
type Rater interface {
	Toggle(ctx context.Context, kind models.RatingKind, entityID, userID uuid.UUID, polarity models.RatingPolarity) (*models.RatingCounts, error)
	Counts(ctx context.Context, kind models.RatingKind, entityID uuid.UUID) (*models.RatingCounts, error)
}

// RatingResponse represents the counts after a toggle
// swagger:model RatingResponse
type RatingResponse struct {
	// Number of likes
	// default: 3
	Likes int `json:"likes"`

	// Number of dislikes
	// default: 1
	Dislikes int `json:"dislikes"`
}

// RatingErrorResponse represents an error response on a rating toggle
// swagger:model RatingErrorResponse
type RatingErrorResponse struct {
	// Error message
	// default: Resource not found
	Error string `json:"error"`
}

// NewRatingHandler returns an HTTP handler toggling the caller's rating
// on a post or comment. A repeated toggle removes the mark, an opposite
// toggle replaces it.
// @Summary Toggle a like or dislike
// @Description Flips the caller's membership in the entity's like or dislike set and returns the updated counts. A user is never in both sets at once.
// @Tags ratings
// @Produce json
// @Param id path string true "Entity UUID"
// @Param status path string true "Rating direction" Enums(like, dislike)
// @Success 200 {object} handlers.RatingResponse
// @Failure 404 {object} handlers.RatingErrorResponse "Unknown entity or direction"
// @Router /post/{id}/{status} [post]
// @Security BearerAuth
func NewRatingHandler(svc Rater, kind models.RatingKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		entityID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Resource not found",
			})
			return
		}

		var polarity models.RatingPolarity
		switch chi.URLParam(r, "status") {
		case string(models.RatingLike):
			polarity = models.RatingLike
		case string(models.RatingDislike):
			polarity = models.RatingDislike
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Resource not found",
			})
			return
		}

		counts, err := svc.Toggle(ctx, kind, entityID, userID, polarity)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RatingErrorResponse{
					Error: "Resource not found",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RatingResponse{
			Likes:    counts.Likes,
			Dislikes: counts.Dislikes,
		})
	}
}

// NewRatingCountsHandler returns an HTTP handler reading the like and
// dislike counts of a post or comment without changing them.
// @Summary Get rating counts
// @Tags ratings
// @Produce json
// @Param id path string true "Entity UUID"
// @Success 200 {object} handlers.RatingResponse
// @Failure 404 {object} handlers.RatingErrorResponse "Unknown entity"
// @Router /post/{id}/rating [get]
func NewRatingCountsHandler(svc Rater, kind models.RatingKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Resource not found",
			})
			return
		}

		counts, err := svc.Counts(r.Context(), kind, entityID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RatingErrorResponse{
					Error: "Resource not found",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RatingResponse{
			Likes:    counts.Likes,
			Dislikes: counts.Dislikes,
		})
	}
}
