package api

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is wrapped by every StatusError
var ErrUnexpectedStatus = errors.New("unexpected response status")

// ErrNoImageURL is returned when an upload succeeds without naming the stored image
var ErrNoImageURL = errors.New("upload response did not include an image URL")

// Failure messages, one per operation. Server detail is deliberately not included.
const (
	msgLogin          = "Login failed"
	msgFetchProjects  = "Failed to fetch projects"
	msgCreateProject  = "Failed to create project"
	msgUpdateProject  = "Failed to update project"
	msgDeleteProject  = "Failed to delete project"
	msgFetchSkills    = "Failed to fetch skills"
	msgCreateSkill    = "Failed to create skill"
	msgUpdateSkill    = "Failed to update skill"
	msgDeleteSkill    = "Failed to delete skill"
	msgFetchMessages  = "Failed to fetch messages"
	msgFetchURLs      = "Failed to fetch URLs"
	msgCreateURL      = "Failed to create URL"
	msgUpdateURL      = "Failed to update URL"
	msgDeleteURL      = "Failed to delete URL"
	msgUploadImage    = "Failed to upload image"
	msgInvalidPayload = "Failed to encode request"
)

// StatusError reports a non-2xx answer for one operation
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// StatusCode extracts the HTTP status from err, or 0 when err is not a StatusError
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func encodeError(err error) error {
	return fmt.Errorf("%s: %w", msgInvalidPayload, err)
}
