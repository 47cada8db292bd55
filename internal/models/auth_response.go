package models

// LoginResponse represents the response after a successful login.
// Token is absent when the backend relies on its session cookie alone.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Token   string    `json:"token,omitempty"`
	User    *UserInfo `json:"user,omitempty"`
}

// UserInfo is the public part of the operator account
type UserInfo struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// ErrorResponse is the body every failing endpoint answers with
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
