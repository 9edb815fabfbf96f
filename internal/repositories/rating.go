package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/models"
)

// RatingRepository toggles like/dislike membership for posts and comments.
type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// ratingTables maps a rating kind to its entity and join tables.
// Table names are fixed here, never taken from request input.
func ratingTables(kind models.RatingKind) (entityTable, idColumn, likeTable, dislikeTable string, err error) {
	switch kind {
	case models.RatingKindPost:
		return "posts", "post_id", "post_likes", "post_dislikes", nil
	case models.RatingKindComment:
		return "comments", "comment_id", "comment_likes", "comment_dislikes", nil
	default:
		return "", "", "", "", fmt.Errorf("unknown rating kind %q", kind)
	}
}

// Toggle flips the user's membership in the polarity set of the entity
// and returns the resulting counts of both sets. The whole sequence runs
// in one transaction holding a row lock on the rated entity, so
// concurrent toggles for the same entity serialize and the user ends up
// in at most one of the two sets. Returns (nil, nil) when the entity
// does not exist.
func (r *RatingRepository) Toggle(
	ctx context.Context,
	kind models.RatingKind,
	entityID, userID uuid.UUID,
	polarity models.RatingPolarity,
) (*models.RatingCounts, error) {
	entityTable, idColumn, likeTable, dislikeTable, err := ratingTables(kind)
	if err != nil {
		return nil, err
	}

	sameTable, oppositeTable := likeTable, dislikeTable
	if polarity == models.RatingDislike {
		sameTable, oppositeTable = dislikeTable, likeTable
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Locking read serializes concurrent toggles on the same entity.
	lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, idColumn, entityTable, idColumn)
	var lockedID uuid.UUID
	if err := tx.GetContext(ctx, &lockedID, lockQuery, entityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	removeQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND user_id = $2`, sameTable, idColumn)
	res, err := tx.ExecContext(ctx, removeQuery, entityID, userID)
	if err != nil {
		return nil, err
	}
	removed, _ := res.RowsAffected()

	if removed == 0 {
		// Not yet rated with this polarity: move over from the opposite
		// set if present, then add.
		removeOppositeQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND user_id = $2`, oppositeTable, idColumn)
		if _, err := tx.ExecContext(ctx, removeOppositeQuery, entityID, userID); err != nil {
			return nil, err
		}

		addQuery := fmt.Sprintf(`INSERT INTO %s (%s, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, sameTable, idColumn)
		if _, err := tx.ExecContext(ctx, addQuery, entityID, userID); err != nil {
			return nil, err
		}
	}

	countsQuery := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM %s WHERE %s = $1) AS likes,
			(SELECT COUNT(*) FROM %s WHERE %s = $1) AS dislikes
	`, likeTable, idColumn, dislikeTable, idColumn)

	var counts models.RatingCounts
	if err := tx.GetContext(ctx, &counts, countsQuery, entityID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Log.Infow("rating toggled",
		"kind", kind,
		"entity_id", entityID,
		"user_id", userID,
		"polarity", polarity,
		"likes", counts.Likes,
		"dislikes", counts.Dislikes,
	)

	return &counts, nil
}

// Counts returns the like and dislike counts of an entity without
// modifying anything. Returns (nil, nil) when the entity does not exist.
func (r *RatingRepository) Counts(
	ctx context.Context,
	kind models.RatingKind,
	entityID uuid.UUID,
) (*models.RatingCounts, error) {
	entityTable, idColumn, likeTable, dislikeTable, err := ratingTables(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM %s WHERE %s = e.%s) AS likes,
			(SELECT COUNT(*) FROM %s WHERE %s = e.%s) AS dislikes
		FROM %s e
		WHERE e.%s = $1
	`, likeTable, idColumn, idColumn, dislikeTable, idColumn, idColumn, entityTable, idColumn)

	var counts models.RatingCounts
	err = r.db.GetContext(ctx, &counts, query, entityID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &counts, nil
}
