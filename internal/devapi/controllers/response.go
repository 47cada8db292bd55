package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/devapi/service"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": status < http.StatusBadRequest,
		"message": message,
	})
}

// respondError maps service errors onto status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		respondMessage(c, status, "Internal server error")
		return
	}
	respondMessage(c, status, err.Error())
}

func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	respondMessage(c, http.StatusBadRequest, "Invalid request body")
}

// userID returns the operator id set by the auth middleware
func userID(c *gin.Context) (string, bool) {
	id := c.GetString("user_id")
	if id == "" {
		respondMessage(c, http.StatusUnauthorized, "User ID not found in token")
		c.Abort()
		return "", false
	}
	return id, true
}
