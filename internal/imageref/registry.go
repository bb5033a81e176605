// Package imageref hands out opaque references to user-selected background
// images. A reference stays valid for the session until it is released.
package imageref

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"quickreview/internal/logging"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Ref is an opaque image handle. The zero Ref means "no image".
type Ref string

// IsZero reports whether r is the empty reference.
func (r Ref) IsZero() bool { return r == "" }

// ErrNotFound is returned for references that were never created or have
// been released.
var ErrNotFound = errors.New("image reference not found")

// Image is what a reference resolves to.
type Image struct {
	Path     string
	MIMEType string
	Data     []byte
}

// Registry stores referenced images in memory with no expiry.
type Registry struct {
	items *cache.Cache
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: cache.New(cache.NoExpiration, 0)}
}

// Create reads the file at path and returns a fresh reference to it. No
// validation of type or size is performed beyond sniffing the MIME type.
func (r *Registry) Create(path string) (Ref, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve image path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	img := Image{
		Path:     abs,
		MIMEType: http.DetectContentType(data),
		Data:     data,
	}
	ref := Ref(uuid.NewString())
	r.items.Set(string(ref), img, cache.NoExpiration)
	logging.Get(logging.CategoryImages).Info("created %s for %s (%s, %d bytes)", ref, abs, img.MIMEType, len(data))
	return ref, nil
}

// Resolve returns the image behind ref.
func (r *Registry) Resolve(ref Ref) (Image, error) {
	v, ok := r.items.Get(string(ref))
	if !ok {
		return Image{}, fmt.Errorf("%s: %w", ref, ErrNotFound)
	}
	return v.(Image), nil
}

// Release drops ref. Releasing the zero or an unknown ref is a no-op.
func (r *Registry) Release(ref Ref) {
	if ref.IsZero() {
		return
	}
	if _, ok := r.items.Get(string(ref)); !ok {
		return
	}
	r.items.Delete(string(ref))
	logging.Get(logging.CategoryImages).Info("released %s", ref)
}

// Len returns the number of live references.
func (r *Registry) Len() int {
	return r.items.ItemCount()
}
