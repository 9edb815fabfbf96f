package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID `json:"id" db:"user_id"`                      // Primary key
	Username       string    `json:"username" db:"username"`               // Unique username
	Email          string    `json:"email" db:"email"`                     // Unique email
	PasswordHash   string    `json:"-" db:"password_hash"`                 // Hashed password
	EmailConfirmed bool      `json:"email_confirmed" db:"email_confirmed"` // Whether the email was confirmed with a code
	ProfileImage   string    `json:"profile_image" db:"profile_image"`     // Profile image reference
	IsAdmin        bool      `json:"is_admin" db:"is_admin"`               // Administrators may edit any resource
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}
