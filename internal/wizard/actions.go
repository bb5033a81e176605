package wizard

import (
	"context"
	"errors"

	"quickreview/internal/loader"
	"quickreview/internal/logging"
	"quickreview/internal/poster"
	"quickreview/internal/review"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// ClipboardFunc adapts a plain function to Clipboard.
type ClipboardFunc func(text string) error

// WriteText calls f.
func (f ClipboardFunc) WriteText(text string) error { return f(text) }

// PosterExporter renders a descriptor to a saved image.
type PosterExporter interface {
	Export(ctx context.Context, d poster.Descriptor) (string, error)
}

// AudioToggler flips ambient playback.
type AudioToggler interface {
	Toggle(ctx context.Context) (bool, error)
}

// CopyVariant copies one generated variant to the clipboard. The copied
// confirmation is shown straight away; a failed write is only logged.
func (s *Session) CopyVariant(v review.Variant) {
	s.copyText(s.generated.Text(v))
}

// CopyText copies arbitrary text with the same confirmation behavior.
func (s *Session) CopyText(text string) {
	s.copyText(text)
}

func (s *Session) copyText(text string) {
	s.notify(MsgCopied)
	if s.deps.Clipboard == nil {
		return
	}
	if err := s.deps.Clipboard.WriteText(text); err != nil {
		logging.Get(logging.CategoryClipboard).Warn("clipboard write failed: %v", err)
	}
}

// ExportReady reports whether an export can start now.
func (s *Session) ExportReady() bool {
	return s.deps.Exporter != nil && s.capable(loader.Rasterizer)
}

// ExportPoster saves the poster for the current state. See ExportDescriptor.
func (s *Session) ExportPoster(ctx context.Context) (string, error) {
	return s.ExportDescriptor(ctx, s.Poster())
}

// ExportDescriptor saves a previously captured descriptor. It does not
// read session state, so it may run on another goroutine while the
// session keeps changing; the export reflects the moment d was taken.
//
// When the rasterizer is not loaded yet it notifies and returns
// poster.ErrNotReady without attempting anything.
func (s *Session) ExportDescriptor(ctx context.Context, d poster.Descriptor) (string, error) {
	log := logging.Get(logging.CategoryPoster)
	if !s.ExportReady() {
		s.notify(MsgToolsLoading)
		log.Info("export requested before rasterizer was ready")
		return "", poster.ErrNotReady
	}

	path, err := s.deps.Exporter.Export(ctx, d)
	if err != nil {
		if errors.Is(err, poster.ErrNotReady) {
			s.notify(MsgToolsLoading)
		} else {
			s.notify(MsgPosterFailed)
		}
		log.Error("export failed: %v", err)
		return "", err
	}

	s.notify(MsgPosterSaved)
	log.Info("poster saved to %s", path)
	return path, nil
}

// ToggleAudio flips ambient playback and returns the resulting state.
// Failures leave the state unchanged and are logged, never shown.
func (s *Session) ToggleAudio(ctx context.Context) bool {
	if s.deps.Audio == nil {
		return false
	}
	playing, err := s.deps.Audio.Toggle(ctx)
	if err != nil {
		logging.Get(logging.CategoryAudio).Debug("audio toggle failed: %v", err)
	}
	return playing
}
