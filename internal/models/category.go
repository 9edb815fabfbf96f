package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryDB represents a category record in the database
type CategoryDB struct {
	CategoryID uuid.UUID `json:"id" db:"category_id"`        // Primary key
	Title      string    `json:"title" db:"title"`           // Unique single-word title
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
