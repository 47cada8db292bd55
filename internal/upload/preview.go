package upload

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// BlobPrefix marks preview references created locally
const BlobPrefix = "blob:"

// Previews tracks preview references for locally selected files.
// Each reference created must be revoked exactly once; revoking anything
// that is not a live local reference does nothing.
type Previews struct {
	mu    sync.Mutex
	blobs map[string]File
}

func NewPreviews() *Previews {
	return &Previews{blobs: make(map[string]File)}
}

// Create registers file and returns its preview reference
func (p *Previews) Create(file File) string {
	ref := BlobPrefix + uuid.NewString()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.blobs[ref] = file
	return ref
}

// Revoke releases ref. It reports whether a live local reference was released.
func (p *Previews) Revoke(ref string) bool {
	if !IsLocal(ref) {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.blobs[ref]; !ok {
		return false
	}
	delete(p.blobs, ref)
	return true
}

// Lookup returns the file behind a live reference
func (p *Previews) Lookup(ref string) (File, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.blobs[ref]
	return f, ok
}

// Live returns how many references have not been revoked yet
func (p *Previews) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.blobs)
}

// IsLocal reports whether ref looks like a locally created preview
func IsLocal(ref string) bool {
	return strings.HasPrefix(ref, BlobPrefix)
}
