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

type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, title, created_at
		FROM categories
		ORDER BY created_at DESC
	`

	var categories []models.CategoryDB
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryReadRepository) GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error) {
	const query = `
		SELECT category_id, title, created_at
		FROM categories
		WHERE category_id = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, categoryID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *CategoryReadRepository) GetByTitle(ctx context.Context, title string) (*models.CategoryDB, error) {
	const query = `
		SELECT category_id, title, created_at
		FROM categories
		WHERE title = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, title)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{title},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

type CategoryWriteRepository struct {
	db *sqlx.DB
}

func NewCategoryWriteRepository(db *sqlx.DB) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db}
}

func (r *CategoryWriteRepository) Save(ctx context.Context, title string) (uuid.UUID, error) {
	const query = `
		INSERT INTO categories (title, created_at)
		VALUES ($1, NOW())
		RETURNING category_id
	`

	var categoryID uuid.UUID
	err := r.db.GetContext(ctx, &categoryID, query, title)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{title},
		"error", err,
	)

	return categoryID, err
}
