package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to recognise a PNG
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		file  File
		valid bool
	}{
		{name: "png", file: File{ContentType: "image/png", Size: 1024}, valid: true},
		{name: "exactly 5 MiB", file: File{ContentType: "image/jpeg", Size: MaxImageSize}, valid: true},
		{name: "one byte over", file: File{ContentType: "image/jpeg", Size: MaxImageSize + 1}, valid: false},
		{name: "pdf", file: File{ContentType: "application/pdf", Size: 10}, valid: false},
		{name: "text", file: File{ContentType: "text/plain", Size: 10}, valid: false},
		{name: "image suffix is not enough", file: File{ContentType: "application/x-image/png", Size: 10}, valid: false},
		{name: "empty type sniffed as png", file: File{Size: int64(len(pngHeader)), Data: pngHeader}, valid: true},
		{name: "empty type sniffed as text", file: File{Size: 5, Data: []byte("hello")}, valid: false},
		{name: "empty type without data", file: File{Size: 0}, valid: false},
		{name: "data over limit with zero size", file: File{ContentType: "image/png", Data: make([]byte, MaxImageSize+1)}, valid: false},
		{name: "data exactly 5 MiB", file: File{ContentType: "image/png", Data: make([]byte, MaxImageSize)}, valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.file)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Empty(t, res.Error)
			} else {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	f, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "logo.png", f.Name)
	assert.Equal(t, "image/png", f.ContentType)
	assert.EqualValues(t, len(pngHeader), f.Size)
	assert.True(t, Validate(f).Valid)

	_, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestPreviewsLifecycle(t *testing.T) {
	p := NewPreviews()
	file := File{Name: "a.png", ContentType: "image/png", Size: 3, Data: []byte{1, 2, 3}}

	ref := p.Create(file)
	assert.True(t, IsLocal(ref))
	assert.Equal(t, 1, p.Live())

	got, ok := p.Lookup(ref)
	require.True(t, ok)
	assert.Equal(t, file, got)

	assert.True(t, p.Revoke(ref))
	assert.False(t, p.Revoke(ref), "second revoke is a no-op")
	assert.Zero(t, p.Live())

	assert.False(t, p.Revoke("https://cdn.example.com/a.png"), "remote URLs are never revoked")
	assert.False(t, p.Revoke("blob:unknown"))
}
