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

type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

func (r *PostReadRepository) List(ctx context.Context, limit, offset int) ([]models.PostDB, error) {
	const query = `
		SELECT post_id, category_id, author_id, title, content, published_at, last_change_at
		FROM posts
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`

	var posts []models.PostDB
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostReadRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.PostDB, error) {
	const query = `
		SELECT post_id, category_id, author_id, title, content, published_at, last_change_at
		FROM posts
		WHERE category_id = $1
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.PostDB
	err := r.db.SelectContext(ctx, &posts, query, categoryID, limit, offset)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID, limit, offset},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostReadRepository) ListByAuthorUsername(ctx context.Context, username string, limit, offset int) ([]models.PostDB, error) {
	const query = `
		SELECT p.post_id, p.category_id, p.author_id, p.title, p.content, p.published_at, p.last_change_at
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		WHERE u.username = $1
		ORDER BY p.published_at DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.PostDB
	err := r.db.SelectContext(ctx, &posts, query, username, limit, offset)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username, limit, offset},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostReadRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	const query = `
		SELECT post_id, category_id, author_id, title, content, published_at, last_change_at
		FROM posts
		WHERE post_id = $1
	`

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, postID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

func (r *PostWriteRepository) Save(ctx context.Context, categoryID, authorID uuid.UUID, title, content string) (uuid.UUID, error) {
	const query = `
		INSERT INTO posts (category_id, author_id, title, content, published_at, last_change_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING post_id
	`
	args := []any{categoryID, authorID, title, content}

	var postID uuid.UUID
	err := r.db.GetContext(ctx, &postID, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return postID, err
}

func (r *PostWriteRepository) Update(ctx context.Context, postID uuid.UUID, title, content string) error {
	const query = `
		UPDATE posts
		SET title = $2, content = $3, last_change_at = NOW()
		WHERE post_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, postID, title, content)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, title, content},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *PostWriteRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	const query = `DELETE FROM posts WHERE post_id = $1`

	res, err := r.db.ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{postID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
