package entities

// Skill represents a skill badge shown on the portfolio
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"` // Image URL
}
