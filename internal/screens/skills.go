package screens

import (
	"context"
	"fmt"
	"strings"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/entities"
	"portfolio-admin/internal/upload"
)

// SkillsController is what the skills screen drives
type SkillsController interface {
	Skills() []entities.Skill
	AddSkill(ctx context.Context, in api.SkillInput) error
	UpdateSkill(ctx context.Context, id string, in api.SkillInput) error
	DeleteSkill(ctx context.Context, id string) error
}

type SkillForm struct {
	Name     string `label:"Name" validate:"required"`
	ImageURL string `label:"Image URL" validate:"omitempty,absurl"`
}

type SkillsScreen struct {
	state
	ctrl    SkillsController
	confirm Confirmer
	form    SkillForm
	picker  imagePicker
}

func NewSkillsScreen(ctrl SkillsController, confirm Confirmer, previews *upload.Previews) *SkillsScreen {
	return &SkillsScreen{
		ctrl:    ctrl,
		confirm: confirm,
		picker:  newImagePicker(previews),
	}
}

func (s *SkillsScreen) Skills() []entities.Skill {
	return s.ctrl.Skills()
}

func (s *SkillsScreen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = true
	s.editingID = ""
	s.form = SkillForm{}
	s.picker.reset("")
}

func (s *SkillsScreen) OpenEdit(id string) error {
	for _, sk := range s.ctrl.Skills() {
		if sk.ID != id {
			continue
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.dialog = true
		s.editingID = sk.ID
		s.form = SkillForm{Name: sk.Name, ImageURL: sk.Image}
		s.picker.reset(sk.Image)
		return nil
	}
	return s.fail(ErrNotFound)
}

func (s *SkillsScreen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = false
	s.editingID = ""
	s.form = SkillForm{}
	s.picker.reset("")
}

func (s *SkillsScreen) Form() SkillForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *SkillsScreen) SetForm(f SkillForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ImageURL != s.form.ImageURL {
		s.picker.useURL(f.ImageURL)
	}
	s.form = f
}

func (s *SkillsScreen) SetImageFile(f upload.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.picker.useFile(f); err != nil {
		s.setErrLocked(err)
		return err
	}
	return nil
}

func (s *SkillsScreen) ImageMode() ImageMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.mode
}

func (s *SkillsScreen) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.display()
}

// Submit validates the dialog and creates or updates the skill. A skill
// needs an image, either as a URL or a file.
func (s *SkillsScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.dialog {
		s.mu.Unlock()
		return ErrNoDialog
	}
	form := SkillForm{Name: strings.TrimSpace(s.form.Name)}
	id := s.editingID
	image := s.picker.image()
	if s.picker.mode == ImageModeURL {
		form.ImageURL = strings.TrimSpace(s.picker.url)
		image = urlImage(form.ImageURL)
	}
	s.mu.Unlock()

	if err := check(form); err != nil {
		return s.fail(err)
	}
	if image.IsZero() {
		return s.fail(fmt.Errorf("%w: Image is required", ErrValidation))
	}
	if err := s.begin(); err != nil {
		return err
	}

	in := api.SkillInput{Name: form.Name, Image: image}
	var err error
	if id == "" {
		err = s.ctrl.AddSkill(ctx, in)
	} else {
		err = s.ctrl.UpdateSkill(ctx, id, in)
	}

	s.end(err)
	if err != nil {
		return err
	}
	s.Close()
	return nil
}

func (s *SkillsScreen) Delete(ctx context.Context, id string) error {
	if !s.confirm.Confirm("Are you sure you want to delete this skill?") {
		return ErrCancelled
	}
	if err := s.begin(); err != nil {
		return err
	}
	err := s.ctrl.DeleteSkill(ctx, id)
	s.end(err)
	return err
}
