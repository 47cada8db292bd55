package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize is the largest image accepted for upload (5 MiB)
const MaxImageSize = 5 * 1024 * 1024

// File is an image selected on the operator's machine
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Result is the outcome of Validate; Error is set only when Valid is false
type Result struct {
	Valid bool
	Error string
}

// Validate checks that file is an image no larger than MaxImageSize, taking
// the larger of the declared size and the bytes actually held.
// It never fails with an error; problems are reported in the Result.
func Validate(file File) Result {
	contentType := file.ContentType
	if contentType == "" && len(file.Data) > 0 {
		contentType = mimetype.Detect(file.Data).String()
	}

	if !strings.HasPrefix(contentType, "image/") {
		return Result{Valid: false, Error: "Please select an image file"}
	}
	if max(file.Size, int64(len(file.Data))) > MaxImageSize {
		return Result{Valid: false, Error: "Image size must be less than 5MB"}
	}
	return Result{Valid: true}
}

// Open reads a local file and detects its content type from the bytes
func Open(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read image: %w", err)
	}

	return File{
		Name:        filepath.Base(path),
		ContentType: detectContentType(data),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func detectContentType(data []byte) string {
	mtype := mimetype.Detect(data).String()
	// Drop parameters such as "; charset=utf-8"
	if i := strings.IndexByte(mtype, ';'); i >= 0 {
		mtype = strings.TrimSpace(mtype[:i])
	}
	return mtype
}
