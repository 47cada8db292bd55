package shortcode

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	MinLength       = 3
	MaxLength       = 20
	GeneratedLength = 8
)

var ErrInvalid = errors.New("invalid short code")

var pattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Reserved short codes that would shadow backend routes
var reservedCodes = map[string]bool{
	"admin":     true,
	"api":       true,
	"www":       true,
	"mail":      true,
	"ftp":       true,
	"localhost": true,
	"health":    true,
	"auth":      true,
	"login":     true,
	"logout":    true,
	"upload":    true,
	"uploads":   true,
	"portfolio": true,
	"url":       true,
	"urls":      true,
	"stats":     true,
	"redirect":  true,
}

// IsReserved reports whether code is a reserved word, ignoring case
func IsReserved(code string) bool {
	return reservedCodes[strings.ToLower(code)]
}

// Validate checks a custom short code. The returned error wraps ErrInvalid.
func Validate(code string) error {
	if len(code) < MinLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalid, MinLength)
	}
	if len(code) > MaxLength {
		return fmt.Errorf("%w: must be at most %d characters long", ErrInvalid, MaxLength)
	}
	if !pattern.MatchString(code) {
		return fmt.Errorf("%w: only letters, numbers, hyphens and underscores are allowed", ErrInvalid)
	}
	if IsReserved(code) {
		return fmt.Errorf("%w: '%s' is reserved", ErrInvalid, code)
	}
	return nil
}

// Generate returns a random URL-safe code of GeneratedLength characters
func Generate() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)[:GeneratedLength], nil
}
