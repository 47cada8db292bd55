package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"portfolio-admin/internal/models"
	"portfolio-admin/internal/upload"
)

// UploadImage stores file on the backend and returns its public URL
func (c *Client) UploadImage(ctx context.Context, file upload.File) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeFilePart(w, "image", file); err != nil {
		return "", encodeError(err)
	}
	if err := w.Close(); err != nil {
		return "", encodeError(err)
	}
	payload := &Payload{body: &buf, contentType: w.FormDataContentType(), multipart: true}

	var body models.UploadResponse
	if err := c.call(ctx, http.MethodPost, "/upload", payload, msgUploadImage, &body); err != nil {
		return "", err
	}

	imageURL := body.ImageURL()
	if imageURL == "" {
		return "", ErrNoImageURL
	}
	return imageURL, nil
}
