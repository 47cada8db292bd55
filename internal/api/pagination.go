package api

import (
	"bytes"
	"encoding/json"

	"portfolio-admin/internal/entities"
)

// urlListEnvelope is the current paginated shape, read leniently:
// every pagination field may be missing.
type urlListEnvelope struct {
	Success bool `json:"success"`
	Data    *struct {
		URLs       []entities.ShortenedURL `json:"urls"`
		Pagination *rawPagination          `json:"pagination"`
	} `json:"data"`
}

type rawPagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalURLs   *int  `json:"totalUrls"`
	TotalItems  *int  `json:"totalItems"`
	HasNextPage *bool `json:"hasNextPage"`
	HasNext     *bool `json:"hasNext"`
	HasPrevPage *bool `json:"hasPrevPage"`
	HasPrev     *bool `json:"hasPrev"`
}

// normalizeURLPage maps the three known answers of GET /url onto one
// contract: the current envelope, a legacy bare array, or anything else,
// which degrades to an empty single page.
func normalizeURLPage(body []byte, requestedPage int) entities.URLPage {
	body = bytes.TrimSpace(body)

	if len(body) > 0 && body[0] == '[' {
		var urls []entities.ShortenedURL
		if err := json.Unmarshal(body, &urls); err != nil {
			return entities.SinglePage(nil)
		}
		return entities.SinglePage(urls)
	}

	var env urlListEnvelope
	if err := json.Unmarshal(body, &env); err != nil || !env.Success || env.Data == nil {
		return entities.SinglePage(nil)
	}

	urls := env.Data.URLs
	if urls == nil {
		urls = []entities.ShortenedURL{}
	}

	var p rawPagination
	if env.Data.Pagination != nil {
		p = *env.Data.Pagination
	}

	pagination := entities.Pagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalItems:  len(urls),
		HasNext:     firstFlag(p.HasNextPage, p.HasNext),
		HasPrev:     firstFlag(p.HasPrevPage, p.HasPrev),
	}
	if pagination.CurrentPage < 1 {
		pagination.CurrentPage = requestedPage
	}
	if pagination.TotalPages < 1 {
		pagination.TotalPages = 1
	}
	switch {
	case p.TotalURLs != nil:
		pagination.TotalItems = *p.TotalURLs
	case p.TotalItems != nil:
		pagination.TotalItems = *p.TotalItems
	}

	return entities.URLPage{URLs: urls, Pagination: pagination}
}

func firstFlag(flags ...*bool) bool {
	for _, f := range flags {
		if f != nil {
			return *f
		}
	}
	return false
}
