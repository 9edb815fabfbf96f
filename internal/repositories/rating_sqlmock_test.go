package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-forum/internal/models"
)

func TestRatingRepository_Toggle_BeginError(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRatingRepository(sqlxDB)

	// Close db so Begin fails
	db.Close()

	counts, err := repo.Toggle(context.Background(), models.RatingKindPost, uuid.New(), uuid.New(), models.RatingLike)
	assert.Error(t, err)
	assert.Nil(t, counts)
}

func TestRatingRepository_Toggle_LockQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRatingRepository(sqlxDB)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT post_id FROM posts").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	counts, err := repo.Toggle(context.Background(), models.RatingKindPost, uuid.New(), uuid.New(), models.RatingLike)
	assert.Error(t, err)
	assert.Nil(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_Toggle_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRatingRepository(sqlxDB)

	postID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT post_id FROM posts").
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(postID.String()))
	mock.ExpectExec("DELETE FROM post_likes").
		WithArgs(postID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT").
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"likes", "dislikes"}).AddRow(0, 0))
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	counts, err := repo.Toggle(context.Background(), models.RatingKindPost, postID, userID, models.RatingLike)
	assert.Error(t, err)
	assert.Nil(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_Toggle_UnknownKind(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRatingRepository(sqlxDB)

	counts, err := repo.Toggle(context.Background(), models.RatingKind("thread"), uuid.New(), uuid.New(), models.RatingLike)
	assert.Error(t, err)
	assert.Nil(t, counts)
}
