package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/devapi/service"
	"portfolio-admin/internal/upload"
)

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm)
}

// formImage reads the file part named field. It returns nil when the request
// is not multipart or carries no such file.
func formImage(c *gin.Context, field string) ([]byte, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	if fh.Size > upload.MaxImageSize {
		return nil, fmt.Errorf("%w: image size must be less than 5MB", service.ErrInvalidInput)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, upload.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return data, nil
}
