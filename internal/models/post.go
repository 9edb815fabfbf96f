package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a post record in the database
type PostDB struct {
	PostID       uuid.UUID `json:"id" db:"post_id"`                  // Primary key
	CategoryID   uuid.UUID `json:"category_id" db:"category_id"`     // Owning category
	AuthorID     uuid.UUID `json:"author_id" db:"author_id"`         // Authoring user
	Title        string    `json:"title" db:"title"`                 // Post title
	Content      string    `json:"content" db:"content"`             // Post body
	PublishedAt  time.Time `json:"published_at" db:"published_at"`   // Creation timestamp
	LastChangeAt time.Time `json:"last_change_at" db:"last_change_at"` // Last edit timestamp
}
