package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/internal/entities"
)

// URLRepository defines the short link store. Deleted links are kept
// with IsDeleted set and their code stays taken.
type URLRepository interface {
	Create(shortCode, fullURL, userID string) (*entities.ShortenedURL, error)
	FindByID(id string) (*entities.ShortenedURL, error)
	FindByShortCode(shortCode string) (*entities.ShortenedURL, error)
	ListByUserID(userID string, offset, limit int) ([]entities.ShortenedURL, int, error)
	Update(id, userID, fullURL, shortCode string) (*entities.ShortenedURL, error)
	SoftDelete(id, userID string) error
	IncrementClickCount(shortCode string) error
}

type urlRepository struct {
	mu     sync.RWMutex
	byID   map[string]*entities.ShortenedURL
	byCode map[string]string // short code -> id
	seq    int64
	order  map[string]int64 // insertion order, for stable newest-first listing
}

// NewURLRepository creates an empty in-memory URL repository
func NewURLRepository() URLRepository {
	return &urlRepository{
		byID:   make(map[string]*entities.ShortenedURL),
		byCode: make(map[string]string),
		order:  make(map[string]int64),
	}
}

func (r *urlRepository) Create(shortCode, fullURL, userID string) (*entities.ShortenedURL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[shortCode]; taken {
		return nil, ErrShortCodeTaken
	}

	now := time.Now().UTC()
	u := &entities.ShortenedURL{
		ID:         uuid.NewString(),
		ShortenURL: shortCode,
		FullURL:    fullURL,
		UserID:     userID,
		CreatedAt:  &now,
	}
	r.seq++
	r.byID[u.ID] = u
	r.byCode[shortCode] = u.ID
	r.order[u.ID] = r.seq

	out := *u
	return &out, nil
}

func (r *urlRepository) FindByID(id string) (*entities.ShortenedURL, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

// FindByShortCode finds a live link by its short code
func (r *urlRepository) FindByShortCode(shortCode string) (*entities.ShortenedURL, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[shortCode]
	if !ok || r.byID[id].IsDeleted {
		return nil, ErrNotFound
	}
	out := *r.byID[id]
	return &out, nil
}

// ListByUserID returns one window of the user's links, newest first, and
// the total number of links the user has
func (r *urlRepository) ListByUserID(userID string, offset, limit int) ([]entities.ShortenedURL, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]*entities.ShortenedURL, 0)
	for _, u := range r.byID {
		if u.UserID == userID {
			owned = append(owned, u)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return r.order[owned[i].ID] > r.order[owned[j].ID]
	})

	total := len(owned)
	if offset < 0 || offset >= total || limit < 1 {
		return []entities.ShortenedURL{}, total, nil
	}
	end := offset + min(limit, total-offset)
	urls := make([]entities.ShortenedURL, 0, end-offset)
	for _, u := range owned[offset:end] {
		urls = append(urls, *u)
	}
	return urls, total, nil
}

// Update changes target and code of a live link owned by userID.
// An empty shortCode keeps the current one.
func (r *urlRepository) Update(id, userID, fullURL, shortCode string) (*entities.ShortenedURL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok || u.UserID != userID || u.IsDeleted {
		return nil, ErrNotFound
	}

	if shortCode != "" && shortCode != u.ShortenURL {
		if _, taken := r.byCode[shortCode]; taken {
			return nil, ErrShortCodeTaken
		}
		delete(r.byCode, u.ShortenURL)
		r.byCode[shortCode] = u.ID
		u.ShortenURL = shortCode
	}
	u.FullURL = fullURL

	out := *u
	return &out, nil
}

func (r *urlRepository) SoftDelete(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok || u.UserID != userID || u.IsDeleted {
		return ErrNotFound
	}
	u.IsDeleted = true
	return nil
}

func (r *urlRepository) IncrementClickCount(shortCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byCode[shortCode]
	if !ok || r.byID[id].IsDeleted {
		return ErrNotFound
	}
	r.byID[id].Clicks++
	return nil
}
