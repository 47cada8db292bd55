package entities

import "time"

// User represents an operator account of the development backend
type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
