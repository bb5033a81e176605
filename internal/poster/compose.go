// Package poster shapes review data into a poster description and exports
// it through a rasterizer. The package never touches pixels itself.
package poster

import (
	"strings"

	"quickreview/internal/imageref"
	"quickreview/internal/review"
	"quickreview/internal/theme"
)

// Format is the poster aspect preset.
type Format string

const (
	FormatStory Format = "9:16" // tall story
	FormatPost  Format = "A4"   // portrait post, rendered 4:5
)

// DefaultFormat is the format of a fresh session.
const DefaultFormat = FormatStory

// Valid reports whether f is a known preset.
func (f Format) Valid() bool {
	return f == FormatStory || f == FormatPost
}

// AspectRatio returns the ratio the preset renders at.
func (f Format) AspectRatio() string {
	if f == FormatPost {
		return "4:5"
	}
	return "9:16"
}

// Label is the picker caption.
func (f Format) Label() string {
	if f == FormatPost {
		return "بوست (4:5)"
	}
	return "ستوري (9:16)"
}

// Size is a CSS pixel box.
type Size struct {
	Width  int
	Height int
}

// Size returns the layout box of the preset before device scaling.
func (f Format) Size() Size {
	if f == FormatPost {
		return Size{Width: 320, Height: 400}
	}
	return Size{Width: 300, Height: 533}
}

// ParseFormat accepts the stored values and a few friendly aliases.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "9:16", "story", "tall":
		return FormatStory, true
	case "a4", "4:5", "post", "portrait":
		return FormatPost, true
	}
	return "", false
}

// Config is the user's poster styling.
type Config struct {
	Background imageref.Ref
	Format     Format
}

// DefaultConfig has no background and the story format.
func DefaultConfig() Config {
	return Config{Format: DefaultFormat}
}

const (
	// Label is the accent caption under the place name.
	Label = "SAMCO REVIEW"
	// Badge is the corner mark.
	Badge = "SAMCO"
	// Placeholder is shown in place of a missing background image.
	Placeholder = "اختر صورة لعرضها هنا"
	// DefaultQuote stands in for empty pros.
	DefaultQuote = "تجربة رائعة وتستحق الزيارة"
)

// StarSlots is the fixed number of rating stars drawn on a poster.
const StarSlots = 5

// Descriptor says what the rasterizer should draw.
type Descriptor struct {
	Background  imageref.Ref
	Placeholder string // set only when Background is zero
	Stars       [StarSlots]bool
	PlaceName   string
	Label       string
	Badge       string
	Quote       string
	Format      Format
	AspectRatio string
	ThemeID     theme.ID
	Accent      string
}

// HasBackground reports whether a user image is set.
func (d Descriptor) HasBackground() bool {
	return !d.Background.IsZero()
}

// FilledStars counts the filled star slots.
func (d Descriptor) FilledStars() int {
	n := 0
	for _, filled := range d.Stars {
		if filled {
			n++
		}
	}
	return n
}

// Compose builds the descriptor for the current review, theme and poster
// settings. It works on any input, including an untouched session.
func Compose(in review.Input, th theme.Theme, cfg Config) Descriptor {
	format := cfg.Format
	if !format.Valid() {
		format = DefaultFormat
	}

	d := Descriptor{
		Background:  cfg.Background,
		PlaceName:   in.PlaceName,
		Label:       Label,
		Badge:       Badge,
		Quote:       in.Pros,
		Format:      format,
		AspectRatio: format.AspectRatio(),
		ThemeID:     th.ID,
		Accent:      th.Accent,
	}
	if d.Background.IsZero() {
		d.Placeholder = Placeholder
	}
	if d.Quote == "" {
		d.Quote = DefaultQuote
	}
	for i := range d.Stars {
		d.Stars[i] = i < in.Rating
	}
	return d
}
