package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/models"
)

var (
	ErrNotFound = errors.New("resource not found")
)

// RatingToggler flips a user's like/dislike membership on an entity and
// reads the current counts.
type RatingToggler interface {
	Toggle(ctx context.Context, kind models.RatingKind, entityID, userID uuid.UUID, polarity models.RatingPolarity) (*models.RatingCounts, error)
	Counts(ctx context.Context, kind models.RatingKind, entityID uuid.UUID) (*models.RatingCounts, error)
}

// RatingService applies like/dislike toggles to posts and comments.
type RatingService struct {
	ratings RatingToggler
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratings RatingToggler) *RatingService {
	return &RatingService{ratings: ratings}
}

// Toggle applies the polarity to the entity for the user and returns the
// updated counts. The user ends up in the requested set, or in neither
// when un-rating; never in both.
func (svc *RatingService) Toggle(
	ctx context.Context,
	kind models.RatingKind,
	entityID, userID uuid.UUID,
	polarity models.RatingPolarity,
) (*models.RatingCounts, error) {
	counts, err := svc.ratings.Toggle(ctx, kind, entityID, userID, polarity)
	if err != nil {
		logger.Log.Errorw("failed to toggle rating", "kind", kind, "entity_id", entityID, "err", err)
		return nil, err
	}
	if counts == nil {
		return nil, ErrNotFound
	}

	return counts, nil
}

// Counts returns the current like and dislike counts of the entity.
func (svc *RatingService) Counts(
	ctx context.Context,
	kind models.RatingKind,
	entityID uuid.UUID,
) (*models.RatingCounts, error) {
	counts, err := svc.ratings.Counts(ctx, kind, entityID)
	if err != nil {
		logger.Log.Errorw("failed to read rating counts", "kind", kind, "entity_id", entityID, "err", err)
		return nil, err
	}
	if counts == nil {
		return nil, ErrNotFound
	}

	return counts, nil
}
