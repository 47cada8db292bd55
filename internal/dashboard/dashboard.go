package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/entities"
	"portfolio-admin/internal/models"
	"portfolio-admin/internal/session"
	"portfolio-admin/internal/store"
	"portfolio-admin/internal/upload"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownSection   = errors.New("unknown section")
	ErrInvalidImage     = errors.New("invalid image")
)

// Section is one screen of the authenticated dashboard
type Section string

const (
	SectionOverview Section = "overview"
	SectionProjects Section = "projects"
	SectionSkills   Section = "skills"
	SectionMessages Section = "messages"
	SectionURLs     Section = "urls"
)

// Sections lists the navigable sections in menu order
var Sections = []Section{SectionOverview, SectionProjects, SectionSkills, SectionMessages, SectionURLs}

// Backend is the part of the API client the dashboard drives
type Backend interface {
	store.Backend

	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error

	CreateProject(ctx context.Context, in api.ProjectInput) (json.RawMessage, error)
	UpdateProject(ctx context.Context, id string, in api.ProjectInput) (json.RawMessage, error)
	DeleteProject(ctx context.Context, id string) (json.RawMessage, error)

	CreateSkill(ctx context.Context, in api.SkillInput) (json.RawMessage, error)
	UpdateSkill(ctx context.Context, id string, in api.SkillInput) (json.RawMessage, error)
	DeleteSkill(ctx context.Context, id string) (json.RawMessage, error)

	CreateURL(ctx context.Context, fullURL string) (json.RawMessage, error)
	UpdateURL(ctx context.Context, id, fullURL, shortCode string) (json.RawMessage, error)
	DeleteURL(ctx context.Context, id string) (json.RawMessage, error)

	UploadImage(ctx context.Context, file upload.File) (string, error)
}

// Overview summarises the managed content
type Overview struct {
	Projects       int
	Skills         int
	Messages       int
	UnreadMessages int
	ShortenedURLs  int
}

// Dashboard is the application controller: it tracks whether the operator
// is logged in and which section is shown, and keeps the resource lists
// in the store in step with the backend.
type Dashboard struct {
	backend Backend
	session *session.Session
	store   *store.Store
	logger  *zap.Logger

	mu      sync.RWMutex
	section Section
}

// NewDashboard builds the controller. The authenticated state comes from
// the session as it is now; nothing is fetched until Start or Login.
func NewDashboard(backend Backend, sess *session.Session, st *store.Store, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		backend: backend,
		session: sess,
		store:   st,
		logger:  logger,
		section: SectionOverview,
	}
}

// Start loads every list when a stored session is already authenticated
func (d *Dashboard) Start(ctx context.Context) error {
	if !d.IsAuthenticated() {
		return nil
	}
	return d.LoadAll(ctx)
}

func (d *Dashboard) IsAuthenticated() bool {
	return d.session.IsAuthenticated()
}

func (d *Dashboard) ActiveSection() Section {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.section
}

// SetSection switches the displayed section
func (d *Dashboard) SetSection(s Section) error {
	if !d.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	for _, known := range Sections {
		if s == known {
			d.mu.Lock()
			d.section = s
			d.mu.Unlock()
			return nil
		}
	}
	return ErrUnknownSection
}

// Login authenticates and then loads every list
func (d *Dashboard) Login(ctx context.Context, email, password string) error {
	if _, err := d.backend.Login(ctx, email, password); err != nil {
		return err
	}

	d.mu.Lock()
	d.section = SectionOverview
	d.mu.Unlock()

	return d.LoadAll(ctx)
}

// Logout ends the session whether or not the backend is reachable and
// drops every cached list
func (d *Dashboard) Logout(ctx context.Context) error {
	err := d.backend.Logout(ctx)
	d.store.Reset()

	d.mu.Lock()
	d.section = SectionOverview
	d.mu.Unlock()
	return err
}

// LoadAll fetches projects, skills and messages in parallel, then the
// first page of URLs. A failing list is left empty and logged.
func (d *Dashboard) LoadAll(ctx context.Context) error {
	return d.loadLists(ctx, 1)
}

func (d *Dashboard) loadLists(ctx context.Context, urlPage int) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range []interface {
		Name() store.Resource
		Reload(context.Context) error
	}{d.store.Projects, d.store.Skills, d.store.Messages} {
		g.Go(func() error {
			d.tolerate(c.Name(), c.Reload(gctx))
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	d.tolerate(store.ResourceURLs, d.store.URLs.Load(ctx, urlPage))
	return ctx.Err()
}

func (d *Dashboard) tolerate(r store.Resource, err error) {
	if err == nil || errors.Is(err, store.ErrStale) {
		return
	}
	d.logger.Warn("failed to load list", zap.String("resource", string(r)), zap.Error(err))
}

// reloadAll refreshes every list after a portfolio mutation, keeping the
// URL list on its current page
func (d *Dashboard) reloadAll(ctx context.Context) {
	for _, r := range store.Resources {
		d.store.Invalidate(r)
	}
	_ = d.loadLists(ctx, d.store.URLs.CurrentPage())
}

func (d *Dashboard) reloadURLs(ctx context.Context) {
	d.store.Invalidate(store.ResourceURLs)
	d.tolerate(store.ResourceURLs, d.store.URLs.Reload(ctx))
}

func (d *Dashboard) requireAuth() error {
	if !d.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

func (d *Dashboard) AddProject(ctx context.Context, in api.ProjectInput) error {
	return d.mutatePortfolio(ctx, func() error {
		_, err := d.backend.CreateProject(ctx, in)
		return err
	})
}

func (d *Dashboard) UpdateProject(ctx context.Context, id string, in api.ProjectInput) error {
	return d.mutatePortfolio(ctx, func() error {
		_, err := d.backend.UpdateProject(ctx, id, in)
		return err
	})
}

func (d *Dashboard) DeleteProject(ctx context.Context, id string) error {
	return d.mutatePortfolio(ctx, func() error {
		_, err := d.backend.DeleteProject(ctx, id)
		return err
	})
}

func (d *Dashboard) AddSkill(ctx context.Context, in api.SkillInput) error {
	return d.mutatePortfolio(ctx, func() error {
		_, err := d.backend.CreateSkill(ctx, in)
		return err
	})
}

func (d *Dashboard) UpdateSkill(ctx context.Context, id string, in api.SkillInput) error {
	return d.mutatePortfolio(ctx, func() error {
		_, err := d.backend.UpdateSkill(ctx, id, in)
		return err
	})
}

func (d *Dashboard) DeleteSkill(ctx context.Context, id string) error {
	return d.mutatePortfolio(ctx, func() error {
		_, err := d.backend.DeleteSkill(ctx, id)
		return err
	})
}

// mutatePortfolio runs a project or skill mutation and, if it succeeded,
// reloads every list
func (d *Dashboard) mutatePortfolio(ctx context.Context, mutate func() error) error {
	if err := d.requireAuth(); err != nil {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	d.reloadAll(ctx)
	return nil
}

func (d *Dashboard) CreateURL(ctx context.Context, fullURL string) error {
	return d.mutateURLs(ctx, func() error {
		_, err := d.backend.CreateURL(ctx, fullURL)
		return err
	})
}

func (d *Dashboard) UpdateURL(ctx context.Context, id, fullURL, shortCode string) error {
	return d.mutateURLs(ctx, func() error {
		_, err := d.backend.UpdateURL(ctx, id, fullURL, shortCode)
		return err
	})
}

func (d *Dashboard) DeleteURL(ctx context.Context, id string) error {
	return d.mutateURLs(ctx, func() error {
		_, err := d.backend.DeleteURL(ctx, id)
		return err
	})
}

func (d *Dashboard) mutateURLs(ctx context.Context, mutate func() error) error {
	if err := d.requireAuth(); err != nil {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	d.reloadURLs(ctx)
	return nil
}

// NextURLPage shows the following page of URLs
func (d *Dashboard) NextURLPage(ctx context.Context) error {
	if err := d.requireAuth(); err != nil {
		return err
	}
	return d.store.URLs.Next(ctx)
}

// PrevURLPage shows the preceding page of URLs
func (d *Dashboard) PrevURLPage(ctx context.Context) error {
	if err := d.requireAuth(); err != nil {
		return err
	}
	return d.store.URLs.Prev(ctx)
}

// GotoURLPage shows the given page of URLs
func (d *Dashboard) GotoURLPage(ctx context.Context, page int) error {
	if err := d.requireAuth(); err != nil {
		return err
	}
	return d.store.URLs.Load(ctx, page)
}

// UploadImage validates file locally and uploads it, returning its URL
func (d *Dashboard) UploadImage(ctx context.Context, file upload.File) (string, error) {
	if err := d.requireAuth(); err != nil {
		return "", err
	}
	if res := upload.Validate(file); !res.Valid {
		return "", fmt.Errorf("%w: %s", ErrInvalidImage, res.Error)
	}
	return d.backend.UploadImage(ctx, file)
}

func (d *Dashboard) Projects() []entities.Project {
	return d.store.Projects.Items()
}

func (d *Dashboard) Skills() []entities.Skill {
	return d.store.Skills.Items()
}

func (d *Dashboard) Messages() []entities.ContactMessage {
	return d.store.Messages.Items()
}

func (d *Dashboard) URLPage() entities.URLPage {
	return d.store.URLs.Page()
}

// Loading reports whether any list is being fetched
func (d *Dashboard) Loading() bool {
	return d.store.Projects.Loading() || d.store.Skills.Loading() ||
		d.store.Messages.Loading() || d.store.URLs.Loading()
}

// Overview counts what the other sections hold
func (d *Dashboard) Overview() Overview {
	messages := d.store.Messages.Items()
	unread := 0
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
	}
	return Overview{
		Projects:       d.store.Projects.Len(),
		Skills:         d.store.Skills.Len(),
		Messages:       len(messages),
		UnreadMessages: unread,
		ShortenedURLs:  d.store.URLs.Page().Pagination.TotalItems,
	}
}
