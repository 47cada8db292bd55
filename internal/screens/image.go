package screens

import (
	"fmt"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/upload"
)

// ImageMode says whether a record's image comes from a URL or a local file
type ImageMode string

const (
	ImageModeURL  ImageMode = "url"
	ImageModeFile ImageMode = "file"
)

// imagePicker holds the image selection of an open dialog. Each preview it
// creates is revoked exactly once: on replacement, reset or release.
type imagePicker struct {
	previews *upload.Previews
	mode     ImageMode
	url      string
	preview  string // holds the selected file while in file mode
}

func newImagePicker(previews *upload.Previews) imagePicker {
	if previews == nil {
		previews = upload.NewPreviews()
	}
	return imagePicker{previews: previews, mode: ImageModeURL}
}

// useURL switches to URL mode, dropping any selected file
func (p *imagePicker) useURL(u string) {
	p.release()
	p.mode = ImageModeURL
	p.url = u
}

// useFile selects a local file. An invalid file leaves the selection as is.
func (p *imagePicker) useFile(f upload.File) error {
	if res := upload.Validate(f); !res.Valid {
		return fmt.Errorf("%w: %s", ErrValidation, res.Error)
	}
	p.release()
	p.mode = ImageModeFile
	p.preview = p.previews.Create(f)
	return nil
}

// reset returns to URL mode with the given current image
func (p *imagePicker) reset(current string) {
	p.useURL(current)
}

func (p *imagePicker) release() {
	if p.preview != "" {
		p.previews.Revoke(p.preview)
		p.preview = ""
	}
}

// image is what will be submitted
func (p *imagePicker) image() api.Image {
	if p.mode == ImageModeFile {
		if f, ok := p.previews.Lookup(p.preview); ok {
			return api.ImageFromFile(f)
		}
	}
	return urlImage(p.url)
}

func urlImage(u string) api.Image {
	if u == "" {
		return api.Image{}
	}
	return api.ImageFromURL(u)
}

// display is the reference to show: the local preview or the remote URL
func (p *imagePicker) display() string {
	if p.preview != "" {
		return p.preview
	}
	return p.url
}
