package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/internal/entities"
)

// PortfolioRepository stores the public portfolio content
type PortfolioRepository interface {
	ListProjects() []entities.Project
	CreateProject(p entities.Project) entities.Project
	UpdateProject(p entities.Project) (entities.Project, error)
	DeleteProject(id string) error

	ListSkills() []entities.Skill
	CreateSkill(s entities.Skill) entities.Skill
	UpdateSkill(s entities.Skill) (entities.Skill, error)
	DeleteSkill(id string) error

	ListMessages() []entities.ContactMessage
	CreateMessage(m entities.ContactMessage) entities.ContactMessage
}

type portfolioRepository struct {
	mu       sync.RWMutex
	projects []entities.Project
	skills   []entities.Skill
	messages []entities.ContactMessage
}

// NewPortfolioRepository creates an empty in-memory portfolio repository
func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepository{
		projects: []entities.Project{},
		skills:   []entities.Skill{},
		messages: []entities.ContactMessage{},
	}
}

func (r *portfolioRepository) ListProjects() []entities.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Project{}, r.projects...)
}

func (r *portfolioRepository) CreateProject(p entities.Project) entities.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	r.projects = append(r.projects, p)
	return p
}

func (r *portfolioRepository) UpdateProject(p entities.Project) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = p
			return p, nil
		}
	}
	return entities.Project{}, ErrNotFound
}

func (r *portfolioRepository) DeleteProject(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *portfolioRepository) ListSkills() []entities.Skill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Skill{}, r.skills...)
}

func (r *portfolioRepository) CreateSkill(s entities.Skill) entities.Skill {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	r.skills = append(r.skills, s)
	return s
}

func (r *portfolioRepository) UpdateSkill(s entities.Skill) (entities.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.skills {
		if r.skills[i].ID == s.ID {
			r.skills[i] = s
			return s, nil
		}
	}
	return entities.Skill{}, ErrNotFound
}

func (r *portfolioRepository) DeleteSkill(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.skills {
		if r.skills[i].ID == id {
			r.skills = append(r.skills[:i], r.skills[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListMessages returns messages newest first
func (r *portfolioRepository) ListMessages() []entities.ContactMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		out = append(out, r.messages[i])
	}
	return out
}

func (r *portfolioRepository) CreateMessage(m entities.ContactMessage) entities.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = &now
	r.messages = append(r.messages, m)
	return m
}
