package entities

import "time"

// ShortenedURL represents a short link owned by the operator
type ShortenedURL struct {
	ID         string     `json:"id"`
	ShortenURL string     `json:"shortenUrl"` // Short code
	FullURL    string     `json:"fullUrl"`
	Clicks     int        `json:"clicks"`
	UserID     string     `json:"userId"`
	IsDeleted  bool       `json:"isDeleted"` // Soft-deleted links stay listed but are read-only
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// Mutable reports whether the link may still be edited or deleted
func (u ShortenedURL) Mutable() bool {
	return !u.IsDeleted
}
