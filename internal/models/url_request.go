package models

// CreateURLRequest represents the request body for shortening a URL
type CreateURLRequest struct {
	FullURL string `json:"fullUrl" binding:"required,url"`
}

// UpdateURLRequest represents the request body for editing a short link
type UpdateURLRequest struct {
	FullURL   string `json:"fullUrl" binding:"required,url"`
	ShortCode string `json:"shortCode,omitempty"`
}
