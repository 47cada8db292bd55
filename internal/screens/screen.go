package screens

import (
	"errors"
	"sync"
)

var (
	ErrBusy        = errors.New("another action is in progress")
	ErrCancelled   = errors.New("cancelled")
	ErrNotFound    = errors.New("record not found")
	ErrSoftDeleted = errors.New("deleted links cannot be changed")
	ErrNoDialog    = errors.New("no dialog is open")
)

// Confirmer asks the operator to confirm a destructive action
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// AlwaysConfirm approves every prompt
var AlwaysConfirm = ConfirmFunc(func(string) bool { return true })

// state is the transient UI state every screen owns. The mutex is never
// held across a network call.
type state struct {
	mu        sync.Mutex
	dialog    bool
	editingID string
	loading   bool
	err       string
}

// begin marks an action as in flight, rejecting re-entry
func (s *state) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	return nil
}

// end finishes an action and records its error, if any
func (s *state) end(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.setErrLocked(err)
}

func (s *state) setErrLocked(err error) {
	if err != nil && !errors.Is(err, ErrCancelled) {
		s.err = err.Error()
	}
}

// fail records err without an action in flight
func (s *state) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErrLocked(err)
	return err
}

func (s *state) DialogOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog
}

// EditingID is the id of the record in the dialog, empty when creating
func (s *state) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *state) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrorMessage is the message of the last failed action
func (s *state) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *state) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}
