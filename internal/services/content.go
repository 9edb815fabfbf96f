package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/models"
)

var (
	ErrForbidden            = errors.New("only the author or an administrator may do this")
	ErrCategoryExists       = errors.New("category already exists")
	ErrInvalidCategoryTitle = errors.New("the category title must be a single word")
)

// PostReader defines read-only operations for posts.
type PostReader interface {
	List(ctx context.Context, limit, offset int) ([]models.PostDB, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.PostDB, error)
	ListByAuthorUsername(ctx context.Context, username string, limit, offset int) ([]models.PostDB, error)
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, categoryID, authorID uuid.UUID, title, content string) (uuid.UUID, error)
	Update(ctx context.Context, postID uuid.UUID, title, content string) error
	Delete(ctx context.Context, postID uuid.UUID) error
}

// CommentReader defines read-only operations for comments.
type CommentReader interface {
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]models.CommentDB, error)
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, postID, authorID uuid.UUID, text string) (uuid.UUID, error)
	Update(ctx context.Context, commentID uuid.UUID, text string) error
	Delete(ctx context.Context, commentID uuid.UUID) error
}

// CategoryReader defines read-only operations for categories.
type CategoryReader interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
	GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
	GetByTitle(ctx context.Context, title string) (*models.CategoryDB, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	Save(ctx context.Context, title string) (uuid.UUID, error)
}

// ContentService handles post, comment and category operations. Reads
// are open to anyone; mutations require the actor to be the resource's
// author or an administrator.
type ContentService struct {
	users          UserReader
	posts          PostReader
	postWriter     PostWriter
	comments       CommentReader
	commentWriter  CommentWriter
	categories     CategoryReader
	categoryWriter CategoryWriter
}

// NewContentService creates a new ContentService.
func NewContentService(
	users UserReader,
	posts PostReader,
	postWriter PostWriter,
	comments CommentReader,
	commentWriter CommentWriter,
	categories CategoryReader,
	categoryWriter CategoryWriter,
) *ContentService {
	return &ContentService{
		users:          users,
		posts:          posts,
		postWriter:     postWriter,
		comments:       comments,
		commentWriter:  commentWriter,
		categories:     categories,
		categoryWriter: categoryWriter,
	}
}

// checkAuthorOrAdmin returns ErrForbidden unless the actor authored the
// resource or is an administrator.
func (svc *ContentService) checkAuthorOrAdmin(ctx context.Context, actorID, authorID uuid.UUID) error {
	if actorID == authorID {
		return nil
	}

	actor, err := svc.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil || !actor.IsAdmin {
		return ErrForbidden
	}

	return nil
}

// Posts

func (svc *ContentService) ListPosts(ctx context.Context, limit, offset int) ([]models.PostDB, error) {
	return svc.posts.List(ctx, limit, offset)
}

func (svc *ContentService) ListPostsByAuthor(ctx context.Context, username string, limit, offset int) ([]models.PostDB, error) {
	return svc.posts.ListByAuthorUsername(ctx, username, limit, offset)
}

func (svc *ContentService) GetPost(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	post, err := svc.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (svc *ContentService) CreatePost(ctx context.Context, categoryID, authorID uuid.UUID, title, content string) (uuid.UUID, error) {
	category, err := svc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return uuid.Nil, err
	}
	if category == nil {
		return uuid.Nil, ErrNotFound
	}

	postID, err := svc.postWriter.Save(ctx, categoryID, authorID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save post", "err", err)
		return uuid.Nil, err
	}

	return postID, nil
}

func (svc *ContentService) UpdatePost(ctx context.Context, postID, actorID uuid.UUID, title, content string) error {
	post, err := svc.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}

	if err := svc.checkAuthorOrAdmin(ctx, actorID, post.AuthorID); err != nil {
		return err
	}

	return svc.postWriter.Update(ctx, postID, title, content)
}

func (svc *ContentService) DeletePost(ctx context.Context, postID, actorID uuid.UUID) error {
	post, err := svc.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}

	if err := svc.checkAuthorOrAdmin(ctx, actorID, post.AuthorID); err != nil {
		return err
	}

	return svc.postWriter.Delete(ctx, postID)
}

// Comments

func (svc *ContentService) ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]models.CommentDB, error) {
	post, err := svc.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	return svc.comments.ListByPost(ctx, postID, limit, offset)
}

func (svc *ContentService) CreateComment(ctx context.Context, postID, authorID uuid.UUID, text string) (uuid.UUID, error) {
	post, err := svc.posts.GetByID(ctx, postID)
	if err != nil {
		return uuid.Nil, err
	}
	if post == nil {
		return uuid.Nil, ErrNotFound
	}

	commentID, err := svc.commentWriter.Save(ctx, postID, authorID, text)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "err", err)
		return uuid.Nil, err
	}

	return commentID, nil
}

func (svc *ContentService) UpdateComment(ctx context.Context, commentID, actorID uuid.UUID, text string) error {
	comment, err := svc.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	if err := svc.checkAuthorOrAdmin(ctx, actorID, comment.AuthorID); err != nil {
		return err
	}

	return svc.commentWriter.Update(ctx, commentID, text)
}

func (svc *ContentService) DeleteComment(ctx context.Context, commentID, actorID uuid.UUID) error {
	comment, err := svc.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	if err := svc.checkAuthorOrAdmin(ctx, actorID, comment.AuthorID); err != nil {
		return err
	}

	return svc.commentWriter.Delete(ctx, commentID)
}

// Categories

func (svc *ContentService) ListCategories(ctx context.Context) ([]models.CategoryDB, error) {
	return svc.categories.List(ctx)
}

// GetCategoryPosts returns the posts of a category, newest first.
func (svc *ContentService) GetCategoryPosts(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.PostDB, error) {
	category, err := svc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	return svc.posts.ListByCategory(ctx, categoryID, limit, offset)
}

// CreateCategory creates a category. The title must be a single word.
func (svc *ContentService) CreateCategory(ctx context.Context, title string) (uuid.UUID, error) {
	if len(strings.Fields(title)) != 1 {
		return uuid.Nil, ErrInvalidCategoryTitle
	}

	existing, err := svc.categories.GetByTitle(ctx, title)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return uuid.Nil, ErrCategoryExists
	}

	categoryID, err := svc.categoryWriter.Save(ctx, title)
	if err != nil {
		logger.Log.Errorw("failed to save category", "err", err)
		return uuid.Nil, err
	}

	return categoryID, nil
}
