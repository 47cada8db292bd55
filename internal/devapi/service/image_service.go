package service

import (
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"portfolio-admin/internal/devapi/repository"
	"portfolio-admin/internal/upload"
)

// ImageService stores uploaded images and hands out their public URLs
type ImageService interface {
	Store(data []byte) (string, error)
	Find(id string) (repository.Image, error)
}

type imageService struct {
	repo      repository.ImageRepository
	publicURL string
}

// NewImageService serves stored images under publicURL + "/uploads/"
func NewImageService(repo repository.ImageRepository, publicURL string) ImageService {
	return &imageService{repo: repo, publicURL: publicURL}
}

// Store checks the bytes are an image within the size limit and saves them.
// The declared content type is ignored in favour of the detected one.
func (s *imageService) Store(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	res := upload.Validate(upload.File{ContentType: mtype.String(), Size: int64(len(data))})
	if !res.Valid {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, res.Error)
	}

	img := s.repo.Save(mtype.String(), data)
	return fmt.Sprintf("%s/uploads/%s", s.publicURL, img.ID), nil
}

func (s *imageService) Find(id string) (repository.Image, error) {
	img, err := s.repo.Find(id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Image{}, ErrNotFound
	}
	return img, err
}
