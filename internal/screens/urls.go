package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"portfolio-admin/internal/entities"
)

// URLsController is what the short links screen drives
type URLsController interface {
	URLPage() entities.URLPage
	CreateURL(ctx context.Context, fullURL string) error
	UpdateURL(ctx context.Context, id, fullURL, shortCode string) error
	DeleteURL(ctx context.Context, id string) error
	NextURLPage(ctx context.Context) error
	PrevURLPage(ctx context.Context) error
	GotoURLPage(ctx context.Context, page int) error
}

type URLForm struct {
	FullURL   string `label:"URL" validate:"required,absurl"`
	ShortCode string `label:"Short code" validate:"omitempty,shortcode"`
}

// URLsScreen manages short links. Soft-deleted links are listed but
// cannot be edited or deleted.
type URLsScreen struct {
	state
	ctrl          URLsController
	confirm       Confirmer
	shortLinkBase string
	form          URLForm
}

// NewURLsScreen creates the screen; shortLinkBase prefixes short codes
// when building public links
func NewURLsScreen(ctrl URLsController, confirm Confirmer, shortLinkBase string) *URLsScreen {
	return &URLsScreen{
		ctrl:          ctrl,
		confirm:       confirm,
		shortLinkBase: strings.TrimSuffix(shortLinkBase, "/"),
	}
}

func (s *URLsScreen) Page() entities.URLPage {
	return s.ctrl.URLPage()
}

func (s *URLsScreen) find(id string) (entities.ShortenedURL, bool) {
	for _, u := range s.ctrl.URLPage().URLs {
		if u.ID == id {
			return u, true
		}
	}
	return entities.ShortenedURL{}, false
}

func (s *URLsScreen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = true
	s.editingID = ""
	s.form = URLForm{}
}

// OpenEdit opens the dialog for a live link on the displayed page
func (s *URLsScreen) OpenEdit(id string) error {
	u, ok := s.find(id)
	if !ok {
		return s.fail(ErrNotFound)
	}
	if !u.Mutable() {
		return s.fail(ErrSoftDeleted)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = true
	s.editingID = u.ID
	s.form = URLForm{FullURL: u.FullURL, ShortCode: u.ShortenURL}
	return nil
}

func (s *URLsScreen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = false
	s.editingID = ""
	s.form = URLForm{}
}

func (s *URLsScreen) Form() URLForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *URLsScreen) SetForm(f URLForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// Submit shortens a new URL or saves the edited link. The short code is
// only sent when editing.
func (s *URLsScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.dialog {
		s.mu.Unlock()
		return ErrNoDialog
	}
	form := URLForm{FullURL: strings.TrimSpace(s.form.FullURL)}
	id := s.editingID
	if id != "" {
		form.ShortCode = strings.TrimSpace(s.form.ShortCode)
	}
	s.mu.Unlock()

	if err := check(form); err != nil {
		return s.fail(err)
	}
	if err := s.begin(); err != nil {
		return err
	}

	var err error
	if id == "" {
		err = s.ctrl.CreateURL(ctx, form.FullURL)
	} else {
		err = s.ctrl.UpdateURL(ctx, id, form.FullURL, form.ShortCode)
	}

	s.end(err)
	if err != nil {
		return err
	}
	s.Close()
	return nil
}

// Delete soft-deletes a live link after confirmation
func (s *URLsScreen) Delete(ctx context.Context, id string) error {
	if u, ok := s.find(id); ok && !u.Mutable() {
		return s.fail(ErrSoftDeleted)
	}
	if !s.confirm.Confirm("Are you sure you want to delete this URL?") {
		return ErrCancelled
	}
	if err := s.begin(); err != nil {
		return err
	}
	err := s.ctrl.DeleteURL(ctx, id)
	s.end(err)
	return err
}

func (s *URLsScreen) NextPage(ctx context.Context) error {
	return s.paginate(func() error { return s.ctrl.NextURLPage(ctx) })
}

func (s *URLsScreen) PrevPage(ctx context.Context) error {
	return s.paginate(func() error { return s.ctrl.PrevURLPage(ctx) })
}

func (s *URLsScreen) GotoPage(ctx context.Context, page int) error {
	return s.paginate(func() error { return s.ctrl.GotoURLPage(ctx, page) })
}

func (s *URLsScreen) paginate(load func() error) error {
	if err := s.begin(); err != nil {
		return err
	}
	err := load()
	s.end(err)
	return err
}

// ShortLink is the public address of a link
func (s *URLsScreen) ShortLink(u entities.ShortenedURL) string {
	return s.shortLinkBase + "/" + u.ShortenURL
}

// QRCode renders the short link of the link with the given id as a PNG
func (s *URLsScreen) QRCode(id string, size int) ([]byte, error) {
	u, ok := s.find(id)
	if !ok {
		return nil, ErrNotFound
	}
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(s.ShortLink(u), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
