package screens

import (
	"context"
	"strings"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/entities"
	"portfolio-admin/internal/upload"
)

// ProjectsController is what the projects screen drives
type ProjectsController interface {
	Projects() []entities.Project
	AddProject(ctx context.Context, in api.ProjectInput) error
	UpdateProject(ctx context.Context, id string, in api.ProjectInput) error
	DeleteProject(ctx context.Context, id string) error
}

// ProjectForm is the editable part of a project
type ProjectForm struct {
	Name           string `label:"Name" validate:"required"`
	Description    string `label:"Description" validate:"required"`
	DemoLink       string `label:"Demo link" validate:"omitempty,absurl"`
	SourceCodeLink string `label:"Source code link" validate:"omitempty,absurl"`
	ThumbnailURL   string `label:"Thumbnail URL" validate:"omitempty,absurl"`
}

type ProjectsScreen struct {
	state
	ctrl    ProjectsController
	confirm Confirmer
	form    ProjectForm
	picker  imagePicker
}

func NewProjectsScreen(ctrl ProjectsController, confirm Confirmer, previews *upload.Previews) *ProjectsScreen {
	return &ProjectsScreen{
		ctrl:    ctrl,
		confirm: confirm,
		picker:  newImagePicker(previews),
	}
}

func (s *ProjectsScreen) Projects() []entities.Project {
	return s.ctrl.Projects()
}

// OpenCreate opens an empty dialog
func (s *ProjectsScreen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = true
	s.editingID = ""
	s.form = ProjectForm{}
	s.picker.reset("")
}

// OpenEdit opens the dialog filled with the project with the given id
func (s *ProjectsScreen) OpenEdit(id string) error {
	for _, p := range s.ctrl.Projects() {
		if p.ID != id {
			continue
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.dialog = true
		s.editingID = p.ID
		s.form = ProjectForm{
			Name:           p.Name,
			Description:    p.Description,
			DemoLink:       p.DemoLink,
			SourceCodeLink: p.SourceCodeLink,
			ThumbnailURL:   p.Thumbnail,
		}
		s.picker.reset(p.Thumbnail)
		return nil
	}
	return s.fail(ErrNotFound)
}

// Close closes the dialog and releases any preview
func (s *ProjectsScreen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *ProjectsScreen) closeLocked() {
	s.dialog = false
	s.editingID = ""
	s.form = ProjectForm{}
	s.picker.reset("")
}

func (s *ProjectsScreen) Form() ProjectForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetForm replaces the form fields. ThumbnailURL also switches the image
// to URL mode when it changed.
func (s *ProjectsScreen) SetForm(f ProjectForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ThumbnailURL != s.form.ThumbnailURL {
		s.picker.useURL(f.ThumbnailURL)
	}
	s.form = f
}

// SetThumbnailFile selects a local image for the thumbnail
func (s *ProjectsScreen) SetThumbnailFile(f upload.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.picker.useFile(f); err != nil {
		s.setErrLocked(err)
		return err
	}
	return nil
}

// ImageMode reports where the thumbnail comes from
func (s *ProjectsScreen) ImageMode() ImageMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.mode
}

// Preview is the thumbnail reference to display
func (s *ProjectsScreen) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.display()
}

// Submit validates the dialog and creates or updates the project
func (s *ProjectsScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.dialog {
		s.mu.Unlock()
		return ErrNoDialog
	}
	form := trimProject(s.form)
	id := s.editingID
	image := s.picker.image()
	if s.picker.mode == ImageModeURL {
		form.ThumbnailURL = strings.TrimSpace(s.picker.url)
		image = urlImage(form.ThumbnailURL)
	} else {
		form.ThumbnailURL = ""
	}
	s.mu.Unlock()

	if err := check(form); err != nil {
		return s.fail(err)
	}
	if err := s.begin(); err != nil {
		return err
	}

	in := api.ProjectInput{
		Name:           form.Name,
		Description:    form.Description,
		DemoLink:       form.DemoLink,
		SourceCodeLink: form.SourceCodeLink,
		Thumbnail:      image,
	}
	var err error
	if id == "" {
		err = s.ctrl.AddProject(ctx, in)
	} else {
		err = s.ctrl.UpdateProject(ctx, id, in)
	}

	s.end(err)
	if err != nil {
		return err
	}
	s.Close()
	return nil
}

// Delete removes the project after confirmation
func (s *ProjectsScreen) Delete(ctx context.Context, id string) error {
	if !s.confirm.Confirm("Are you sure you want to delete this project?") {
		return ErrCancelled
	}
	if err := s.begin(); err != nil {
		return err
	}
	err := s.ctrl.DeleteProject(ctx, id)
	s.end(err)
	return err
}

func trimProject(f ProjectForm) ProjectForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.DemoLink = strings.TrimSpace(f.DemoLink)
	f.SourceCodeLink = strings.TrimSpace(f.SourceCodeLink)
	f.ThumbnailURL = strings.TrimSpace(f.ThumbnailURL)
	return f
}
