package poster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quickreview/internal/imageref"
	"quickreview/internal/logging"
)

// ErrNotReady is returned when export is attempted before a rasterizer is
// available.
var ErrNotReady = errors.New("rasterizer not ready")

// Rasterizer turns a standalone HTML page into a PNG of the element with
// id ElementID.
type Rasterizer interface {
	Render(ctx context.Context, html string, size Size) ([]byte, error)
}

// ImageResolver resolves background references.
type ImageResolver interface {
	Resolve(ref imageref.Ref) (imageref.Image, error)
}

// FileName is the download name for a poster of placeName. Path
// separators are replaced so the name always stays inside the target
// directory.
func FileName(placeName string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, placeName)
	return "Samco-Review-" + safe + ".png"
}

// Exporter renders descriptors and saves the result to Dir.
type Exporter struct {
	Rasterizer Rasterizer
	Images     ImageResolver
	Dir        string
}

// Export rasterizes d and writes the PNG. It returns the written path.
func (e *Exporter) Export(ctx context.Context, d Descriptor) (string, error) {
	if e == nil || e.Rasterizer == nil {
		return "", ErrNotReady
	}
	log := logging.Get(logging.CategoryPoster)

	var bg *imageref.Image
	if d.HasBackground() {
		if e.Images == nil {
			return "", fmt.Errorf("resolve background: no image registry")
		}
		img, err := e.Images.Resolve(d.Background)
		if err != nil {
			return "", fmt.Errorf("resolve background: %w", err)
		}
		bg = &img
	}

	html, err := RenderHTML(d, bg)
	if err != nil {
		return "", err
	}

	png, err := e.Rasterizer.Render(ctx, html, d.Format.Size())
	if err != nil {
		log.Error("rasterize %q failed: %v", d.PlaceName, err)
		return "", fmt.Errorf("rasterize poster: %w", err)
	}

	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, FileName(d.PlaceName))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("write poster: %w", err)
	}
	log.Info("saved poster %s (%d bytes, %s)", path, len(png), d.AspectRatio)
	return path, nil
}
