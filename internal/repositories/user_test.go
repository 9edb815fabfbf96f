package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID, err := repo.Save(ctx, "alice", "alice@example.com", "hashed-password")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	var user struct {
		Username       string `db:"username"`
		Email          string `db:"email"`
		PasswordHash   string `db:"password_hash"`
		EmailConfirmed bool   `db:"email_confirmed"`
		IsAdmin        bool   `db:"is_admin"`
	}
	err = db.Get(&user, "SELECT username, email, password_hash, email_confirmed, is_admin FROM users WHERE user_id=$1", userID)
	assert.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.False(t, user.EmailConfirmed)
	assert.False(t, user.IsAdmin)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "charlie", "charlie@example.com", "secret")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "dave@example.com", "secret2")
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("ByUsernameAndEmail", func(t *testing.T) {
		username := "charlie"
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("UsernameTakenDifferentEmail", func(t *testing.T) {
		username := "charlie"
		email := "unused@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("EmailTakenDifferentUsername", func(t *testing.T) {
		username := "newcomer"
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("NeitherTaken", func(t *testing.T) {
		username := "newcomer"
		email := "unused@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "ghost"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_SetEmailConfirmed(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "eve", "eve@example.com", "secret")
	assert.NoError(t, err)

	user, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.False(t, user.EmailConfirmed)

	err = writeRepo.SetEmailConfirmed(ctx, userID)
	assert.NoError(t, err)

	user, err = readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.True(t, user.EmailConfirmed)
}

func TestUserWriteRepository_UpdateEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "frank", "frank@example.com", "secret")
	assert.NoError(t, err)

	err = writeRepo.UpdateEmail(ctx, userID, "frank-new@example.com")
	assert.NoError(t, err)

	user, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "frank-new@example.com", user.Email)
}

func TestUserWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "grace", "grace@example.com", "secret")
	assert.NoError(t, err)

	err = writeRepo.Delete(ctx, userID)
	assert.NoError(t, err)

	user, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Nil(t, user)
}
