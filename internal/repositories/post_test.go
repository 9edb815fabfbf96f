package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPostRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	userID, err := NewUserWriteRepository(db).Save(ctx, "author", "author@example.com", "secret")
	assert.NoError(t, err)
	categoryID, err := NewCategoryWriteRepository(db).Save(ctx, "golang")
	assert.NoError(t, err)

	writeRepo := NewPostWriteRepository(db)
	readRepo := NewPostReadRepository(db)

	firstID, err := writeRepo.Save(ctx, categoryID, userID, "first", "body one")
	assert.NoError(t, err)
	secondID, err := writeRepo.Save(ctx, categoryID, userID, "second", "body two")
	assert.NoError(t, err)

	t.Run("List newest first", func(t *testing.T) {
		posts, err := readRepo.List(ctx, 20, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, secondID, posts[0].PostID)
		assert.Equal(t, firstID, posts[1].PostID)
	})

	t.Run("ListByCategory", func(t *testing.T) {
		posts, err := readRepo.ListByCategory(ctx, categoryID, 20, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("ListByAuthorUsername", func(t *testing.T) {
		posts, err := readRepo.ListByAuthorUsername(ctx, "author", 20, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 2)

		posts, err = readRepo.ListByAuthorUsername(ctx, "nobody", 20, 0)
		assert.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Update touches last_change_at", func(t *testing.T) {
		before, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)

		err = writeRepo.Update(ctx, firstID, "first edited", "new body")
		assert.NoError(t, err)

		after, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Equal(t, "first edited", after.Title)
		assert.True(t, after.LastChangeAt.After(before.LastChangeAt))
	})

	t.Run("Delete cascades to comments and ratings", func(t *testing.T) {
		commentID, err := NewCommentWriteRepository(db).Save(ctx, secondID, userID, "a comment")
		assert.NoError(t, err)
		_, err = NewRatingRepository(db).Toggle(ctx, "post", secondID, userID, "like")
		assert.NoError(t, err)

		err = writeRepo.Delete(ctx, secondID)
		assert.NoError(t, err)

		post, err := readRepo.GetByID(ctx, secondID)
		assert.NoError(t, err)
		assert.Nil(t, post)

		comment, err := NewCommentReadRepository(db).GetByID(ctx, commentID)
		assert.NoError(t, err)
		assert.Nil(t, comment)

		var likes int
		err = db.Get(&likes, "SELECT COUNT(*) FROM post_likes WHERE post_id=$1", secondID)
		assert.NoError(t, err)
		assert.Zero(t, likes)
	})

	t.Run("GetByID unknown", func(t *testing.T) {
		post, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestCategoryRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	writeRepo := NewCategoryWriteRepository(db)
	readRepo := NewCategoryReadRepository(db)

	categoryID, err := writeRepo.Save(ctx, "databases")
	assert.NoError(t, err)

	t.Run("List", func(t *testing.T) {
		categories, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, categories, 1)
		assert.Equal(t, "databases", categories[0].Title)
	})

	t.Run("GetByTitle", func(t *testing.T) {
		category, err := readRepo.GetByTitle(ctx, "databases")
		assert.NoError(t, err)
		assert.NotNil(t, category)
		assert.Equal(t, categoryID, category.CategoryID)

		category, err = readRepo.GetByTitle(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, category)
	})
}

func TestCommentRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	userID, err := NewUserWriteRepository(db).Save(ctx, "author", "author@example.com", "secret")
	assert.NoError(t, err)
	categoryID, err := NewCategoryWriteRepository(db).Save(ctx, "golang")
	assert.NoError(t, err)
	postID, err := NewPostWriteRepository(db).Save(ctx, categoryID, userID, "post", "body")
	assert.NoError(t, err)

	writeRepo := NewCommentWriteRepository(db)
	readRepo := NewCommentReadRepository(db)

	firstID, err := writeRepo.Save(ctx, postID, userID, "first comment")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, postID, userID, "second comment")
	assert.NoError(t, err)

	t.Run("ListByPost oldest first", func(t *testing.T) {
		comments, err := readRepo.ListByPost(ctx, postID, 20, 0)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, firstID, comments[0].CommentID)
	})

	t.Run("Update", func(t *testing.T) {
		err := writeRepo.Update(ctx, firstID, "edited")
		assert.NoError(t, err)

		comment, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Equal(t, "edited", comment.Text)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, firstID)
		assert.NoError(t, err)

		comment, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Nil(t, comment)
	})
}
