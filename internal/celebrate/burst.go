// Package celebrate describes the particle burst fired after a review is
// generated. Rendering the particles is up to the caller's UI.
package celebrate

import "quickreview/internal/theme"

// Config is a burst request.
type Config struct {
	Count   int      // particle count
	Spread  float64  // cone width in degrees
	OriginY float64  // vertical origin, 0 = top, 1 = bottom
	Colors  []string // hex colours particles are drawn from
}

var (
	cyberPalette = []string{"#f472b6", "#22d3ee"}
	warmPalette  = []string{"#f59e0b", "#7c3aed", "#ffffff"}
)

// Palette returns the particle colours for a theme: the neon pair for
// cyber, the warm trio for everything else.
func Palette(id theme.ID) []string {
	src := warmPalette
	if id == theme.Cyber {
		src = cyberPalette
	}
	return append([]string(nil), src...)
}

// ForTheme returns the standard burst for a theme.
func ForTheme(id theme.ID) Config {
	return Config{
		Count:   150,
		Spread:  70,
		OriginY: 0.6,
		Colors:  Palette(id),
	}
}
