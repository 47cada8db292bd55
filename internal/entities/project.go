package entities

// Project represents a portfolio project
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Thumbnail      string `json:"thumbnail"` // Image URL
	DemoLink       string `json:"demoLink"`
	SourceCodeLink string `json:"sourceCodeLink"`
}
