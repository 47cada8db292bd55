package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/devapi/service"
	"portfolio-admin/internal/models"
)

// PortfolioController serves projects, skills and contact messages.
// Project and skill writes accept JSON or multipart with the image as a file.
type PortfolioController struct {
	portfolioService service.PortfolioService
}

func NewPortfolioController(portfolioService service.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService}
}

// ListProjects handles GET /api/portfolio/projects
func (pc *PortfolioController) ListProjects(c *gin.Context) {
	respondData(c, http.StatusOK, pc.portfolioService.ListProjects())
}

func (pc *PortfolioController) bindProject(c *gin.Context) (*models.ProjectRequest, []byte, bool) {
	var req models.ProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return nil, nil, false
	}
	image, err := formImage(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return &req, image, true
}

// CreateProject handles POST /api/portfolio/projects
func (pc *PortfolioController) CreateProject(c *gin.Context) {
	req, image, ok := pc.bindProject(c)
	if !ok {
		return
	}

	p, err := pc.portfolioService.CreateProject(req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, p)
}

// UpdateProject handles PUT /api/portfolio/projects/:id
func (pc *PortfolioController) UpdateProject(c *gin.Context) {
	req, image, ok := pc.bindProject(c)
	if !ok {
		return
	}

	p, err := pc.portfolioService.UpdateProject(c.Param("id"), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, p)
}

// DeleteProject handles DELETE /api/portfolio/projects/:id
func (pc *PortfolioController) DeleteProject(c *gin.Context) {
	if err := pc.portfolioService.DeleteProject(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Project deleted")
}

// ListSkills handles GET /api/portfolio/skills
func (pc *PortfolioController) ListSkills(c *gin.Context) {
	respondData(c, http.StatusOK, pc.portfolioService.ListSkills())
}

func (pc *PortfolioController) bindSkill(c *gin.Context) (*models.SkillRequest, []byte, bool) {
	var req models.SkillRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return nil, nil, false
	}
	image, err := formImage(c, "image")
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return &req, image, true
}

// CreateSkill handles POST /api/portfolio/skills
func (pc *PortfolioController) CreateSkill(c *gin.Context) {
	req, image, ok := pc.bindSkill(c)
	if !ok {
		return
	}

	s, err := pc.portfolioService.CreateSkill(req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, s)
}

// UpdateSkill handles PUT /api/portfolio/skills/:id
func (pc *PortfolioController) UpdateSkill(c *gin.Context) {
	req, image, ok := pc.bindSkill(c)
	if !ok {
		return
	}

	s, err := pc.portfolioService.UpdateSkill(c.Param("id"), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, s)
}

// DeleteSkill handles DELETE /api/portfolio/skills/:id
func (pc *PortfolioController) DeleteSkill(c *gin.Context) {
	if err := pc.portfolioService.DeleteSkill(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Skill deleted")
}

// ListMessages handles GET /api/portfolio/contact
func (pc *PortfolioController) ListMessages(c *gin.Context) {
	respondData(c, http.StatusOK, pc.portfolioService.ListMessages())
}

// CreateMessage handles the public POST /api/portfolio/contact
func (pc *PortfolioController) CreateMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	respondData(c, http.StatusCreated, pc.portfolioService.CreateMessage(&req))
}
