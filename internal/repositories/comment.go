package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/models"
)

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

func (r *CommentReadRepository) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]models.CommentDB, error) {
	const query = `
		SELECT comment_id, post_id, author_id, text, published_at, last_change_at
		FROM comments
		WHERE post_id = $1
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3
	`

	var comments []models.CommentDB
	err := r.db.SelectContext(ctx, &comments, query, postID, limit, offset)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, limit, offset},
		"result", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *CommentReadRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error) {
	const query = `
		SELECT comment_id, post_id, author_id, text, published_at, last_change_at
		FROM comments
		WHERE comment_id = $1
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, commentID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

func (r *CommentWriteRepository) Save(ctx context.Context, postID, authorID uuid.UUID, text string) (uuid.UUID, error) {
	const query = `
		INSERT INTO comments (post_id, author_id, text, published_at, last_change_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING comment_id
	`
	args := []any{postID, authorID, text}

	var commentID uuid.UUID
	err := r.db.GetContext(ctx, &commentID, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return commentID, err
}

func (r *CommentWriteRepository) Update(ctx context.Context, commentID uuid.UUID, text string) error {
	const query = `
		UPDATE comments
		SET text = $2, last_change_at = NOW()
		WHERE comment_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, commentID, text)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID, text},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *CommentWriteRepository) Delete(ctx context.Context, commentID uuid.UUID) error {
	const query = `DELETE FROM comments WHERE comment_id = $1`

	res, err := r.db.ExecContext(ctx, query, commentID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{commentID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
