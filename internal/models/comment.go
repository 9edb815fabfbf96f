package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment record in the database
type CommentDB struct {
	CommentID    uuid.UUID `json:"id" db:"comment_id"`                 // Primary key
	PostID       uuid.UUID `json:"post_id" db:"post_id"`               // Owning post
	AuthorID     uuid.UUID `json:"author_id" db:"author_id"`           // Authoring user
	Text         string    `json:"text" db:"text"`                     // Comment body, max 1500 characters
	PublishedAt  time.Time `json:"published_at" db:"published_at"`     // Creation timestamp
	LastChangeAt time.Time `json:"last_change_at" db:"last_change_at"` // Last edit timestamp
}
