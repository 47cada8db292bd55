package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		for _, encoding := range []string{"console", "json"} {
			l, err := New(WithLevel(level), WithEncoding(encoding))
			require.NoError(t, err, level+"/"+encoding)
			assert.NotNil(t, l)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(WithLevel("loud"))
	assert.Error(t, err)
}

func TestNewWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.log")
	l, err := New(WithEncoding("json"), WithOutputPaths(path))
	require.NoError(t, err)

	l.Info("hello")
	_ = l.Sync()

	assert.FileExists(t, path)
}
