package service

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-admin/internal/devapi/repository"
	"portfolio-admin/internal/entities"
	"portfolio-admin/internal/models"
	"portfolio-admin/internal/shortcode"
)

const (
	maxGenerateAttempts = 10

	// MaxURLPageSize caps the limit query parameter of GET /url
	MaxURLPageSize = 100
)

// URLService defines short link management
type URLService interface {
	Create(userID string, req *models.CreateURLRequest) (*entities.ShortenedURL, error)
	List(userID string, page, limit int) (*models.URLListResponse, error)
	ListAll(userID string) ([]entities.ShortenedURL, error)
	Update(id, userID string, req *models.UpdateURLRequest) (*entities.ShortenedURL, error)
	Delete(id, userID string) error
	Resolve(shortCode string) (string, error)
}

type urlService struct {
	repo repository.URLRepository
}

// NewURLService creates a new URL service
func NewURLService(repo repository.URLRepository) URLService {
	return &urlService{repo: repo}
}

// Create stores a link under a freshly generated short code
func (s *urlService) Create(userID string, req *models.CreateURLRequest) (*entities.ShortenedURL, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		code, err := shortcode.Generate()
		if err != nil {
			return nil, err
		}
		if shortcode.IsReserved(code) {
			continue
		}

		u, err := s.repo.Create(code, req.FullURL, userID)
		if errors.Is(err, repository.ErrShortCodeTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create URL: %w", err)
		}
		return u, nil
	}
	return nil, fmt.Errorf("failed to generate unique short code after %d attempts", maxGenerateAttempts)
}

// List returns one page of the user's links in the paginated envelope
func (s *urlService) List(userID string, page, limit int) (*models.URLListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	limit = min(limit, MaxURLPageSize)

	_, total, err := s.repo.ListByUserID(userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	// Pages past the end are empty; the offset is only computed within range
	urls := []entities.ShortenedURL{}
	if page <= totalPages {
		urls, _, err = s.repo.ListByUserID(userID, (page-1)*limit, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list URLs: %w", err)
		}
	}

	return &models.URLListResponse{
		Success: true,
		Data: models.URLListData{
			URLs: urls,
			Pagination: models.URLListPagination{
				CurrentPage: page,
				TotalPages:  totalPages,
				TotalURLs:   total,
				Limit:       limit,
				HasNextPage: page < totalPages,
				HasPrevPage: page > 1,
			},
		},
	}, nil
}

// ListAll returns every link of the user, newest first
func (s *urlService) ListAll(userID string) ([]entities.ShortenedURL, error) {
	_, total, err := s.repo.ListByUserID(userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}
	urls, _, err := s.repo.ListByUserID(userID, 0, total)
	if err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}
	return urls, nil
}

// Update changes the target and, when given, the short code of a live link
func (s *urlService) Update(id, userID string, req *models.UpdateURLRequest) (*entities.ShortenedURL, error) {
	code := strings.TrimSpace(req.ShortCode)
	if code != "" {
		if err := shortcode.Validate(code); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	u, err := s.repo.Update(id, userID, req.FullURL, code)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrNotFound
	case errors.Is(err, repository.ErrShortCodeTaken):
		return nil, fmt.Errorf("%w: short code '%s' is already taken", ErrConflict, code)
	case err != nil:
		return nil, fmt.Errorf("failed to update URL: %w", err)
	}
	return u, nil
}

// Delete soft-deletes a live link
func (s *urlService) Delete(id, userID string) error {
	err := s.repo.SoftDelete(id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Resolve returns the target of a live link and counts the click
func (s *urlService) Resolve(shortCode string) (string, error) {
	u, err := s.repo.FindByShortCode(shortCode)
	if err != nil {
		return "", ErrNotFound
	}
	if err := s.repo.IncrementClickCount(shortCode); err != nil {
		return "", ErrNotFound
	}
	return u.FullURL, nil
}
