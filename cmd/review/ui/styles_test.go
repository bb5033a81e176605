package ui

import (
	"strings"
	"testing"

	"quickreview/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStylesFollowsTheme(t *testing.T) {
	for _, th := range theme.All() {
		s := NewStyles(th)
		if s.Theme.ID != th.ID {
			t.Errorf("expected theme %s, got %s", th.ID, s.Theme.ID)
		}
		if got := s.Accent.GetForeground(); got != lipgloss.Color(th.Accent) {
			t.Errorf("%s: expected accent %s, got %v", th.ID, th.Accent, got)
		}
		if got := s.Header.GetBackground(); got != lipgloss.Color(th.PrimaryFrom) {
			t.Errorf("%s: expected header background %s, got %v", th.ID, th.PrimaryFrom, got)
		}
	}
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()
	if s.Theme.ID != theme.Default {
		t.Errorf("expected default theme, got %s", s.Theme.ID)
	}
}

func TestRenderDivider(t *testing.T) {
	s := DefaultStyles()
	if got := s.RenderDivider(5); !strings.Contains(got, "─────") {
		t.Errorf("expected 5 rule characters, got %q", got)
	}
	if got := s.RenderDivider(0); !strings.Contains(got, strings.Repeat("─", 40)) {
		t.Errorf("expected default width divider, got %q", got)
	}
}
