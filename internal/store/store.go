package store

import (
	"context"

	"portfolio-admin/internal/entities"
)

// Resource names one of the lists the dashboard manages
type Resource string

const (
	ResourceProjects Resource = "projects"
	ResourceSkills   Resource = "skills"
	ResourceMessages Resource = "messages"
	ResourceURLs     Resource = "urls"
)

// Resources lists every resource in display order
var Resources = []Resource{ResourceProjects, ResourceSkills, ResourceMessages, ResourceURLs}

// Backend is what the store needs from the API client
type Backend interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	ListSkills(ctx context.Context) ([]entities.Skill, error)
	ListMessages(ctx context.Context) ([]entities.ContactMessage, error)
	ListURLs(ctx context.Context, page, limit int) (entities.URLPage, error)
}

// Store holds the canonical copies of all four resource lists
type Store struct {
	Projects *Collection[entities.Project]
	Skills   *Collection[entities.Skill]
	Messages *Collection[entities.ContactMessage]
	URLs     *URLPages
}

func New(backend Backend, urlPageSize int) *Store {
	return &Store{
		Projects: NewCollection(ResourceProjects, backend.ListProjects),
		Skills:   NewCollection(ResourceSkills, backend.ListSkills),
		Messages: NewCollection(ResourceMessages, backend.ListMessages),
		URLs:     NewURLPages(backend.ListURLs, urlPageSize),
	}
}

// Invalidate marks one resource as out of date
func (s *Store) Invalidate(r Resource) {
	switch r {
	case ResourceProjects:
		s.Projects.Invalidate()
	case ResourceSkills:
		s.Skills.Invalidate()
	case ResourceMessages:
		s.Messages.Invalidate()
	case ResourceURLs:
		s.URLs.Invalidate()
	}
}

// Reload fetches one resource again; URLs are reloaded at the current page
func (s *Store) Reload(ctx context.Context, r Resource) error {
	switch r {
	case ResourceProjects:
		return s.Projects.Reload(ctx)
	case ResourceSkills:
		return s.Skills.Reload(ctx)
	case ResourceMessages:
		return s.Messages.Reload(ctx)
	case ResourceURLs:
		return s.URLs.Reload(ctx)
	}
	return nil
}

// Reset drops every copy, e.g. on logout
func (s *Store) Reset() {
	s.Projects.Reset()
	s.Skills.Reset()
	s.Messages.Reset()
	s.URLs.Reset()
}
