package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"portfolio-admin/internal/devapi/repository"
	"portfolio-admin/internal/jwt"
	"portfolio-admin/internal/models"
)

// AuthService defines operator authentication
type AuthService interface {
	SeedOperator(email, password string) error
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// SeedOperator creates the operator account unless it already exists
func (s *authService) SeedOperator(email, password string) error {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.Create(email, string(hashedPassword), nil); err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}

// Login checks the credentials and issues a token
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User: &models.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}
