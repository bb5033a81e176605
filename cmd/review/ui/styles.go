// Package ui is the interactive Quick Review wizard built on bubbletea.
// Styling follows the active theme from the registry.
package ui

import (
	"strings"

	"quickreview/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors (same for every theme)
var (
	Foreground  = lipgloss.Color("#f8fafc")
	Muted       = lipgloss.Color("#94a3b8")
	Border      = lipgloss.Color("#334155")
	Card        = lipgloss.Color("#0f172a")
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	StarOff     = lipgloss.Color("#475569")
)

// Styles holds all the styled components for one theme.
type Styles struct {
	Theme theme.Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style

	// Interactive
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Button       lipgloss.Style
	Selected     lipgloss.Style
	Card         lipgloss.Style
	ActiveCard   lipgloss.Style

	// Progress
	StepDone    lipgloss.Style
	StepCurrent lipgloss.Style
	StepTodo    lipgloss.Style

	// Poster preview
	Poster    lipgloss.Style
	StarOn    lipgloss.Style
	StarOff   lipgloss.Style
	Badge     lipgloss.Style
	PosterTag lipgloss.Style

	// Status
	Toast   lipgloss.Style
	Spinner lipgloss.Style
	Error   lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles creates the styles for a theme.
func NewStyles(th theme.Theme) Styles {
	primary := lipgloss.Color(th.PrimaryFrom)
	secondary := lipgloss.Color(th.PrimaryTo)
	accent := lipgloss.Color(th.Accent)
	background := lipgloss.Color(th.Background)

	return Styles{
		Theme: th,

		App: lipgloss.NewStyle().
			Foreground(Foreground),

		Header: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(Muted),

		Accent: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Muted),

		FocusedLabel: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(secondary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border),

		ActiveCard: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent),

		StepDone: lipgloss.NewStyle().
			Foreground(secondary),

		StepCurrent: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true),

		StepTodo: lipgloss.NewStyle().
			Foreground(Border),

		Poster: lipgloss.NewStyle().
			Background(background).
			Foreground(Foreground).
			Padding(1, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Align(lipgloss.Center),

		StarOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15")),

		StarOff: lipgloss.NewStyle().
			Foreground(StarOff),

		Badge: lipgloss.NewStyle().
			Background(accent).
			Foreground(background).
			Padding(0, 1).
			Bold(true),

		PosterTag: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Background(Card).
			Foreground(Foreground).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),

		Spinner: lipgloss.NewStyle().
			Foreground(accent),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(Border),
	}
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() Styles {
	return NewStyles(theme.MustLookup(theme.Default))
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 40
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
