package screens

import (
	"portfolio-admin/internal/entities"
)

// MessagesController is what the messages screen reads from
type MessagesController interface {
	Messages() []entities.ContactMessage
}

// MessagesScreen is read-only; the dialog shows one message
type MessagesScreen struct {
	state
	ctrl MessagesController
}

func NewMessagesScreen(ctrl MessagesController) *MessagesScreen {
	return &MessagesScreen{ctrl: ctrl}
}

func (s *MessagesScreen) Messages() []entities.ContactMessage {
	return s.ctrl.Messages()
}

func (s *MessagesScreen) UnreadCount() int {
	n := 0
	for _, m := range s.ctrl.Messages() {
		if !m.IsRead {
			n++
		}
	}
	return n
}

func (s *MessagesScreen) Find(id string) (entities.ContactMessage, bool) {
	for _, m := range s.ctrl.Messages() {
		if m.ID == id {
			return m, true
		}
	}
	return entities.ContactMessage{}, false
}

// Open shows the message with the given id
func (s *MessagesScreen) Open(id string) (entities.ContactMessage, error) {
	m, ok := s.Find(id)
	if !ok {
		return entities.ContactMessage{}, s.fail(ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = true
	s.editingID = id
	return m, nil
}

func (s *MessagesScreen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = false
	s.editingID = ""
}
