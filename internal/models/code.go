package models

import "time"

// EmailCodeDB represents a verification code record in the database.
// At most one row exists per email: issuing a new code replaces the old one.
type EmailCodeDB struct {
	Email    string    `json:"email" db:"email"`         // Subject email, primary key
	Code     int       `json:"code" db:"code"`           // 6-digit numeric code
	ExpireAt time.Time `json:"expire_at" db:"expire_at"` // Instant after which the code is invalid
}

// EmailMessage is the payload published to Kafka for out-of-band delivery.
type EmailMessage struct {
	Subject    string            `json:"subject"`     // Email subject line
	TemplateID string            `json:"template_id"` // Identifier of the message template
	Recipient  string            `json:"recipient"`   // Destination address
	Context    map[string]string `json:"context"`     // Template context (site name, code)
}
