package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/devapi/service"
	"portfolio-admin/internal/models"
)

type URLController struct {
	urlService service.URLService
	legacyList bool
}

// NewURLController creates the short link controller. With legacyList set,
// GET /url answers with a bare array of every link.
func NewURLController(urlService service.URLService, legacyList bool) *URLController {
	return &URLController{
		urlService: urlService,
		legacyList: legacyList,
	}
}

// List handles GET /api/url?page=&limit=
func (uc *URLController) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if uc.legacyList {
		urls, err := uc.urlService.ListAll(uid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, urls)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	response, err := uc.urlService.List(uid, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/url
func (uc *URLController) Create(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := uc.urlService.Create(uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, u)
}

// Update handles PUT /api/url/:id
func (uc *URLController) Update(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.UpdateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := uc.urlService.Update(c.Param("id"), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, u)
}

// Delete handles DELETE /api/url/:id
func (uc *URLController) Delete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := uc.urlService.Delete(c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "URL deleted")
}

// Redirect handles GET /s/:shortCode and counts the click
func (uc *URLController) Redirect(c *gin.Context) {
	target, err := uc.urlService.Resolve(c.Param("shortCode"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Short URL not found")
		return
	}
	c.Redirect(http.StatusFound, target)
}
