package repository

import (
	"sync"

	"github.com/google/uuid"
)

// Image is an uploaded image kept in memory
type Image struct {
	ID          string
	ContentType string
	Data        []byte
}

// ImageRepository stores uploaded images
type ImageRepository interface {
	Save(contentType string, data []byte) Image
	Find(id string) (Image, error)
}

type imageRepository struct {
	mu     sync.RWMutex
	images map[string]Image
}

func NewImageRepository() ImageRepository {
	return &imageRepository{images: make(map[string]Image)}
}

func (r *imageRepository) Save(contentType string, data []byte) Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	img := Image{ID: uuid.NewString(), ContentType: contentType, Data: data}
	r.images[img.ID] = img
	return img
}

func (r *imageRepository) Find(id string) (Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[id]
	if !ok {
		return Image{}, ErrNotFound
	}
	return img, nil
}
