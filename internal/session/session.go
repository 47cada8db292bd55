package session

import (
	"context"
	"fmt"
	"sync"
)

// State is everything the client persists about the operator's login
type State struct {
	Token           string `json:"authToken,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Store reads, persists and clears the credential in durable storage
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
	Clear(ctx context.Context) error
}

// Session is the operator's credential as seen by the rest of the client.
// It mirrors the store in memory so reads never touch storage.
type Session struct {
	store Store

	mu    sync.RWMutex
	state State
}

// New resolves the session from the store synchronously; no network call is made
func New(ctx context.Context, store Store) (*Session, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &Session{store: store, state: state}, nil
}

// Token returns the bearer credential, or "" when there is none
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// IsAuthenticated reports whether the operator is logged in
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// Persist marks the session authenticated and stores token when one was issued
func (s *Session) Persist(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := State{Token: s.state.Token, IsAuthenticated: true}
	if token != "" {
		next.Token = token
	}
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.state = next
	return nil
}

// Clear forgets the credential. The in-memory state is cleared even when
// the store fails, so no further request carries the old token.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
