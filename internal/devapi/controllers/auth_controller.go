package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/devapi/service"
	"portfolio-admin/internal/middleware"
	"portfolio-admin/internal/models"
)

type AuthController struct {
	authService service.AuthService
	tokenTTL    time.Duration
}

func NewAuthController(authService service.AuthService, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		authService: authService,
		tokenTTL:    tokenTTL,
	}
}

// Login handles POST /api/auth/login. The token is returned in the body
// and also set as an HTTP-only cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, response.Token, int(ac.tokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response)
}

// Logout handles POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	respondMessage(c, http.StatusOK, "Logged out")
}
