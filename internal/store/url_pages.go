package store

import (
	"context"
	"errors"
	"sync"

	"portfolio-admin/internal/entities"
)

var (
	ErrNoNextPage = errors.New("already on the last page")
	ErrNoPrevPage = errors.New("already on the first page")
)

// PageFetchFunc loads one page of shortened URLs
type PageFetchFunc func(ctx context.Context, page, limit int) (entities.URLPage, error)

// URLPages holds the page of shortened URLs currently displayed and the
// cursor it was loaded from. Loading a page replaces the previous one.
type URLPages struct {
	fetch PageFetchFunc
	limit int

	mu      sync.RWMutex
	page    int
	current entities.URLPage
	loaded  bool
	loading bool
	err     error
	gen     uint64
}

func NewURLPages(fetch PageFetchFunc, limit int) *URLPages {
	if limit < 1 {
		limit = 10
	}
	return &URLPages{
		fetch:   fetch,
		limit:   limit,
		page:    1,
		current: entities.SinglePage(nil),
	}
}

// Load requests page and, unless a newer request superseded it, makes it
// the displayed page. A failed fetch leaves an empty page at that cursor.
func (p *URLPages) Load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.page = page
	p.loading = true
	p.mu.Unlock()

	result, err := p.fetch(ctx, page, p.limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return ErrStale
	}
	p.loading = false
	p.err = err
	if err != nil {
		empty := entities.SinglePage(nil)
		empty.Pagination.CurrentPage = page
		p.current = empty
		p.loaded = false
		return err
	}
	p.current = result
	p.loaded = true
	return nil
}

// Reload fetches the page at the current cursor again
func (p *URLPages) Reload(ctx context.Context) error {
	return p.Load(ctx, p.CurrentPage())
}

// Next loads the following page when the envelope says there is one
func (p *URLPages) Next(ctx context.Context) error {
	cur := p.Page()
	if !cur.Pagination.HasNext {
		return ErrNoNextPage
	}
	return p.Load(ctx, cur.Pagination.CurrentPage+1)
}

// Prev loads the preceding page when the envelope says there is one
func (p *URLPages) Prev(ctx context.Context) error {
	cur := p.Page()
	if !cur.Pagination.HasPrev || cur.Pagination.CurrentPage <= 1 {
		return ErrNoPrevPage
	}
	return p.Load(ctx, cur.Pagination.CurrentPage-1)
}

// Page returns a copy of the displayed page
func (p *URLPages) Page() entities.URLPage {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := p.current
	out.URLs = make([]entities.ShortenedURL, len(p.current.URLs))
	copy(out.URLs, p.current.URLs)
	return out
}

// CurrentPage returns the cursor of the last issued load
func (p *URLPages) CurrentPage() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.page
}

func (p *URLPages) Limit() int {
	return p.limit
}

func (p *URLPages) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = false
}

func (p *URLPages) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

func (p *URLPages) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

func (p *URLPages) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

// Reset returns to an empty first page. Loads in flight become stale.
func (p *URLPages) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.page = 1
	p.current = entities.SinglePage(nil)
	p.loaded = false
	p.loading = false
	p.err = nil
}
