package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/devapi/service"
)

type UploadController struct {
	imageService service.ImageService
}

func NewUploadController(imageService service.ImageService) *UploadController {
	return &UploadController{imageService: imageService}
}

// Upload handles POST /api/upload with the file in the "image" part
func (uc *UploadController) Upload(c *gin.Context) {
	data, err := formImage(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	if data == nil {
		respondMessage(c, http.StatusBadRequest, "No image provided")
		return
	}

	imageURL, err := uc.imageService.Store(data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"url":     imageURL,
	})
}

// Serve handles GET /uploads/:id
func (uc *UploadController) Serve(c *gin.Context) {
	img, err := uc.imageService.Find(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
