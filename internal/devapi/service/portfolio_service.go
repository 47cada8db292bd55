package service

import (
	"errors"

	"portfolio-admin/internal/devapi/repository"
	"portfolio-admin/internal/entities"
	"portfolio-admin/internal/models"
)

// PortfolioService defines management of projects, skills and contact messages.
// image, when non-nil, is an uploaded file that replaces the image URL of
// the request.
type PortfolioService interface {
	ListProjects() []entities.Project
	CreateProject(req *models.ProjectRequest, image []byte) (*entities.Project, error)
	UpdateProject(id string, req *models.ProjectRequest, image []byte) (*entities.Project, error)
	DeleteProject(id string) error

	ListSkills() []entities.Skill
	CreateSkill(req *models.SkillRequest, image []byte) (*entities.Skill, error)
	UpdateSkill(id string, req *models.SkillRequest, image []byte) (*entities.Skill, error)
	DeleteSkill(id string) error

	ListMessages() []entities.ContactMessage
	CreateMessage(req *models.ContactRequest) *entities.ContactMessage
}

type portfolioService struct {
	repo   repository.PortfolioRepository
	images ImageService
}

func NewPortfolioService(repo repository.PortfolioRepository, images ImageService) PortfolioService {
	return &portfolioService{repo: repo, images: images}
}

// resolveImage stores image when given and otherwise keeps current
func (s *portfolioService) resolveImage(current string, image []byte) (string, error) {
	if image == nil {
		return current, nil
	}
	return s.images.Store(image)
}

func (s *portfolioService) ListProjects() []entities.Project {
	return s.repo.ListProjects()
}

func (s *portfolioService) CreateProject(req *models.ProjectRequest, image []byte) (*entities.Project, error) {
	thumbnail, err := s.resolveImage(req.Thumbnail, image)
	if err != nil {
		return nil, err
	}

	p := s.repo.CreateProject(entities.Project{
		Name:           req.Name,
		Description:    req.Description,
		Thumbnail:      thumbnail,
		DemoLink:       req.DemoLink,
		SourceCodeLink: req.SourceCodeLink,
	})
	return &p, nil
}

func (s *portfolioService) UpdateProject(id string, req *models.ProjectRequest, image []byte) (*entities.Project, error) {
	thumbnail, err := s.resolveImage(req.Thumbnail, image)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.UpdateProject(entities.Project{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Thumbnail:      thumbnail,
		DemoLink:       req.DemoLink,
		SourceCodeLink: req.SourceCodeLink,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *portfolioService) DeleteProject(id string) error {
	if errors.Is(s.repo.DeleteProject(id), repository.ErrNotFound) {
		return ErrNotFound
	}
	return nil
}

func (s *portfolioService) ListSkills() []entities.Skill {
	return s.repo.ListSkills()
}

func (s *portfolioService) CreateSkill(req *models.SkillRequest, image []byte) (*entities.Skill, error) {
	img, err := s.resolveImage(req.Image, image)
	if err != nil {
		return nil, err
	}

	sk := s.repo.CreateSkill(entities.Skill{Name: req.Name, Image: img})
	return &sk, nil
}

func (s *portfolioService) UpdateSkill(id string, req *models.SkillRequest, image []byte) (*entities.Skill, error) {
	img, err := s.resolveImage(req.Image, image)
	if err != nil {
		return nil, err
	}

	sk, err := s.repo.UpdateSkill(entities.Skill{ID: id, Name: req.Name, Image: img})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

func (s *portfolioService) DeleteSkill(id string) error {
	if errors.Is(s.repo.DeleteSkill(id), repository.ErrNotFound) {
		return ErrNotFound
	}
	return nil
}

func (s *portfolioService) ListMessages() []entities.ContactMessage {
	return s.repo.ListMessages()
}

func (s *portfolioService) CreateMessage(req *models.ContactRequest) *entities.ContactMessage {
	m := s.repo.CreateMessage(entities.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		PhoneNo: req.PhoneNo,
		Subject: req.Subject,
		Message: req.Message,
	})
	return &m
}
