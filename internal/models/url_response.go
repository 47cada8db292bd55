package models

import "portfolio-admin/internal/entities"

// URLListResponse is the current paginated shape of GET /url
type URLListResponse struct {
	Success bool        `json:"success"`
	Data    URLListData `json:"data"`
}

// URLListData nests the page of links with its pagination block
type URLListData struct {
	URLs       []entities.ShortenedURL `json:"urls"`
	Pagination URLListPagination       `json:"pagination"`
}

// URLListPagination is the pagination block as the backend names it
type URLListPagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalURLs   int  `json:"totalUrls"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}
