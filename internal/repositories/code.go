package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/models"
)

type EmailCodeReadRepository struct {
	db *sqlx.DB
}

func NewEmailCodeReadRepository(db *sqlx.DB) *EmailCodeReadRepository {
	return &EmailCodeReadRepository{db: db}
}

func (r *EmailCodeReadRepository) GetByEmail(ctx context.Context, email string) (*models.EmailCodeDB, error) {
	const query = `
		SELECT email, code, expire_at
		FROM email_codes
		WHERE email = $1
	`

	var code models.EmailCodeDB
	err := r.db.GetContext(ctx, &code, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &code, nil
}

type EmailCodeWriteRepository struct {
	db *sqlx.DB
}

func NewEmailCodeWriteRepository(db *sqlx.DB) *EmailCodeWriteRepository {
	return &EmailCodeWriteRepository{db: db}
}

// Replace stores a code for the email, displacing any previous one.
// The upsert keeps exactly one surviving row per email under concurrent
// issue requests (last write wins).
func (r *EmailCodeWriteRepository) Replace(ctx context.Context, email string, code int, expireAt time.Time) error {
	const query = `
		INSERT INTO email_codes (email, code, expire_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET code = EXCLUDED.code,
		    expire_at = EXCLUDED.expire_at
	`
	args := []any{email, code, expireAt}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the code row for the email, if any.
func (r *EmailCodeWriteRepository) Delete(ctx context.Context, email string) error {
	const query = `DELETE FROM email_codes WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteExpired removes all codes past their expiry and returns how many.
func (r *EmailCodeWriteRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM email_codes WHERE expire_at <= NOW()`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
