package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-admin/internal/entities"
)

func TestNormalizeURLPage(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		requestedPage int
		wantURLs      int
		want          entities.Pagination
	}{
		{
			name: "current shape fully populated",
			body: `{"success":true,"data":{"urls":[{"id":"1"},{"id":"2"}],
				"pagination":{"currentPage":2,"totalPages":3,"totalUrls":12,"hasNextPage":true,"hasPrevPage":true}}}`,
			requestedPage: 2,
			wantURLs:      2,
			want:          entities.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 12, HasNext: true, HasPrev: true},
		},
		{
			name:          "current shape without pagination block",
			body:          `{"success":true,"data":{"urls":[{"id":"1"}]}}`,
			requestedPage: 4,
			wantURLs:      1,
			want:          entities.Pagination{CurrentPage: 4, TotalPages: 1, TotalItems: 1},
		},
		{
			name:          "current shape with partial pagination",
			body:          `{"success":true,"data":{"urls":[{"id":"1"},{"id":"2"}],"pagination":{"totalPages":5,"hasNext":true}}}`,
			requestedPage: 1,
			wantURLs:      2,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 5, TotalItems: 2, HasNext: true},
		},
		{
			name:          "current shape with totalItems instead of totalUrls",
			body:          `{"success":true,"data":{"urls":[],"pagination":{"currentPage":1,"totalPages":2,"totalItems":7,"hasPrev":false}}}`,
			requestedPage: 1,
			wantURLs:      0,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 2, TotalItems: 7},
		},
		{
			name:          "current shape without urls",
			body:          `{"success":true,"data":{"pagination":{"currentPage":1}}}`,
			requestedPage: 1,
			wantURLs:      0,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 0},
		},
		{
			name:          "legacy bare array",
			body:          `[{"id":"1","fullUrl":"https://a.example"},{"id":"2"},{"id":"3"}]`,
			requestedPage: 3,
			wantURLs:      3,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 3},
		},
		{
			name:          "legacy empty array",
			body:          `[]`,
			requestedPage: 1,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1},
		},
		{
			name:          "success false",
			body:          `{"success":false,"data":{"urls":[{"id":"1"}]}}`,
			requestedPage: 2,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1},
		},
		{
			name:          "empty body",
			body:          ``,
			requestedPage: 1,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1},
		},
		{
			name:          "not json",
			body:          `<html>gateway</html>`,
			requestedPage: 1,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1},
		},
		{
			name:          "null",
			body:          `null`,
			requestedPage: 1,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1},
		},
		{
			name:          "urls of the wrong type",
			body:          `{"success":true,"data":{"urls":"nope"}}`,
			requestedPage: 1,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1},
		},
		{
			name:          "array of the wrong type",
			body:          `[1,2,3]`,
			requestedPage: 1,
			want:          entities.Pagination{CurrentPage: 1, TotalPages: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := normalizeURLPage([]byte(tt.body), tt.requestedPage)

			assert.NotNil(t, page.URLs, "the list is never nil")
			assert.Len(t, page.URLs, tt.wantURLs)
			assert.Equal(t, tt.want, page.Pagination)
			assert.GreaterOrEqual(t, page.Pagination.CurrentPage, 1)
			assert.GreaterOrEqual(t, page.Pagination.TotalPages, 1)
		})
	}
}
