package entities

import "time"

// ContactMessage is a message left through the portfolio contact form
type ContactMessage struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	PhoneNo   string     `json:"phoneNo,omitempty"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	IsRead    bool       `json:"isRead,omitempty"`
}
