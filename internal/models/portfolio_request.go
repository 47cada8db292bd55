package models

// ProjectRequest is the JSON form of a project submission
type ProjectRequest struct {
	Name           string `json:"name" form:"name" binding:"required"`
	Description    string `json:"description" form:"description" binding:"required"`
	Thumbnail      string `json:"thumbnail,omitempty" form:"thumbnail"`
	DemoLink       string `json:"demoLink,omitempty" form:"demoLink"`
	SourceCodeLink string `json:"sourceCodeLink,omitempty" form:"sourceCodeLink"`
}

// SkillRequest is the JSON form of a skill submission
type SkillRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Image string `json:"image,omitempty" form:"image"`
}

// ContactRequest is what the public contact form posts
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	PhoneNo string `json:"phoneNo,omitempty"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
