package entities

// Pagination describes where a page sits in a paginated collection.
// Every field is always populated, whatever shape the server answered with.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// URLPage is one page of shortened URLs together with its pagination envelope
type URLPage struct {
	URLs       []ShortenedURL `json:"urls"`
	Pagination Pagination     `json:"pagination"`
}

// SinglePage wraps urls into an envelope describing a lone first page
func SinglePage(urls []ShortenedURL) URLPage {
	if urls == nil {
		urls = []ShortenedURL{}
	}
	return URLPage{
		URLs: urls,
		Pagination: Pagination{
			CurrentPage: 1,
			TotalPages:  1,
			TotalItems:  len(urls),
		},
	}
}
