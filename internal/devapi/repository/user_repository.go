package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/internal/entities"
)

// UserRepository defines the operator account store
type UserRepository interface {
	Create(email, passwordHash string, name *string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User // keyed by id
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[string]*entities.User)}
}

// Create stores a new user; emails are unique, ignoring case
func (r *userRepository) Create(email, passwordHash string, name *string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrDuplicateEmail
		}
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[user.ID] = user

	out := *user
	return &out, nil
}

func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) FindByID(id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}
