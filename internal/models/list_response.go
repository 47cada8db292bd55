package models

// ListResponse is the envelope of every non-paginated list endpoint
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
}

// ItemResponse wraps a single created or updated record
type ItemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// UploadResponse covers both shapes the upload endpoint is known to answer with
type UploadResponse struct {
	URL  string `json:"url,omitempty"`
	Data *struct {
		URL string `json:"url"`
	} `json:"data,omitempty"`
}

// ImageURL returns whichever URL the response carried
func (r UploadResponse) ImageURL() string {
	if r.URL != "" {
		return r.URL
	}
	if r.Data != nil {
		return r.Data.URL
	}
	return ""
}
