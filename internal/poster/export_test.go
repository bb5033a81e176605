package poster

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quickreview/internal/imageref"
	"quickreview/internal/review"
	"quickreview/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRasterizer struct {
	html string
	size Size
	err  error
}

func (f *fakeRasterizer) Render(ctx context.Context, html string, size Size) ([]byte, error) {
	f.html = html
	f.size = size
	if f.err != nil {
		return nil, f.err
	}
	return []byte("PNG"), nil
}

type fakeImages map[imageref.Ref]imageref.Image

func (f fakeImages) Resolve(ref imageref.Ref) (imageref.Image, error) {
	img, ok := f[ref]
	if !ok {
		return imageref.Image{}, imageref.ErrNotFound
	}
	return img, nil
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Samco-Review-Cafe X.png", FileName("Cafe X"))
	assert.Equal(t, "Samco-Review-a_b.png", FileName("a/b"))
	assert.Equal(t, "Samco-Review-.png", FileName(""))
}

func TestExportWritesPNG(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRasterizer{}
	e := &Exporter{Rasterizer: r, Images: fakeImages{"bg": {MIMEType: "image/png", Data: []byte("x")}}, Dir: dir}
	d := Compose(review.Input{PlaceName: "Cafe X", Rating: 5}, theme.MustLookup(theme.Cosmic), Config{Background: "bg", Format: FormatPost})

	path, err := e.Export(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Samco-Review-Cafe X.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PNG", string(data))
	assert.Equal(t, FormatPost.Size(), r.size)
	assert.True(t, strings.Contains(r.html, "data:image/png;base64,"))
}

func TestExportRasterizerFailure(t *testing.T) {
	boom := errors.New("tainted canvas")
	e := &Exporter{Rasterizer: &fakeRasterizer{err: boom}, Dir: t.TempDir()}

	_, err := e.Export(context.Background(), Compose(review.NewInput(), theme.MustLookup(theme.Cosmic), DefaultConfig()))
	assert.ErrorIs(t, err, boom)
}

func TestExportWithoutRasterizer(t *testing.T) {
	var e *Exporter
	_, err := e.Export(context.Background(), Descriptor{})
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = (&Exporter{}).Export(context.Background(), Descriptor{})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestExportReleasedBackground(t *testing.T) {
	e := &Exporter{Rasterizer: &fakeRasterizer{}, Images: fakeImages{}, Dir: t.TempDir()}
	d := Compose(review.NewInput(), theme.MustLookup(theme.Cosmic), Config{Background: "gone"})

	_, err := e.Export(context.Background(), d)
	assert.ErrorIs(t, err, imageref.ErrNotFound)
}
