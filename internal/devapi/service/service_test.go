package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-admin/internal/devapi/repository"
	"portfolio-admin/internal/jwt"
	"portfolio-admin/internal/models"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestAuthService(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour)
	svc := NewAuthService(repository.NewUserRepository(), jwtService)

	require.NoError(t, svc.SeedOperator("admin@example.com", "pw"))
	require.NoError(t, svc.SeedOperator("admin@example.com", "pw"))

	_, err := svc.Login(&models.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(&models.LoginRequest{Email: "nobody@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login(&models.LoginRequest{Email: "admin@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestURLServiceLifecycle(t *testing.T) {
	svc := NewURLService(repository.NewURLRepository())

	created, err := svc.Create("u1", &models.CreateURLRequest{FullURL: "https://example.com"})
	require.NoError(t, err)
	assert.Len(t, created.ShortenURL, 8)
	assert.Zero(t, created.Clicks)
	assert.False(t, created.IsDeleted)

	target, err := svc.Resolve(created.ShortenURL)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)

	_, err = svc.Update(created.ID, "u1", &models.UpdateURLRequest{FullURL: "https://example.org", ShortCode: "api"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := svc.Update(created.ID, "u1", &models.UpdateURLRequest{FullURL: "https://example.org", ShortCode: "mine"})
	require.NoError(t, err)
	assert.Equal(t, "mine", updated.ShortenURL)
	assert.Equal(t, 1, updated.Clicks)

	require.NoError(t, svc.Delete(created.ID, "u1"))
	assert.ErrorIs(t, svc.Delete(created.ID, "u1"), ErrNotFound)
	_, err = svc.Resolve("mine")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.ListAll("u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDeleted)
}

func TestURLServiceList(t *testing.T) {
	svc := NewURLService(repository.NewURLRepository())
	for range 15 {
		_, err := svc.Create("u1", &models.CreateURLRequest{FullURL: "https://example.com"})
		require.NoError(t, err)
	}

	resp, err := svc.List("u1", 2, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Data.URLs, 5)
	assert.Equal(t, models.URLListPagination{
		CurrentPage: 2,
		TotalPages:  2,
		TotalURLs:   15,
		Limit:       10,
		HasNextPage: false,
		HasPrevPage: true,
	}, resp.Data.Pagination)

	empty, err := svc.List("nobody", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.Data.URLs)
	assert.Equal(t, 1, empty.Data.Pagination.TotalPages)
}

func TestURLServiceListBounds(t *testing.T) {
	svc := NewURLService(repository.NewURLRepository())
	for range 3 {
		_, err := svc.Create("u1", &models.CreateURLRequest{FullURL: "https://example.com"})
		require.NoError(t, err)
	}

	past, err := svc.List("u1", math.MaxInt, 10)
	require.NoError(t, err)
	assert.Empty(t, past.Data.URLs)
	assert.Equal(t, 1, past.Data.Pagination.TotalPages)
	assert.False(t, past.Data.Pagination.HasNextPage)

	wide, err := svc.List("u1", 1, math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, wide.Data.URLs, 3)
	assert.Equal(t, MaxURLPageSize, wide.Data.Pagination.Limit)
}

func TestPortfolioServiceImages(t *testing.T) {
	images := NewImageService(repository.NewImageRepository(), "http://dev.local")
	svc := NewPortfolioService(repository.NewPortfolioRepository(), images)

	p, err := svc.CreateProject(&models.ProjectRequest{Name: "Site", Description: "d", Thumbnail: "https://cdn/x.png"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.png", p.Thumbnail)

	p, err = svc.UpdateProject(p.ID, &models.ProjectRequest{Name: "Site", Description: "d"}, pngPixel)
	require.NoError(t, err)
	assert.Contains(t, p.Thumbnail, "http://dev.local/uploads/")

	_, err = svc.CreateSkill(&models.SkillRequest{Name: "Go"}, []byte("plain text"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateSkill("missing", &models.SkillRequest{Name: "Go"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteProject("missing"), ErrNotFound)
}
