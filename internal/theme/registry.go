// Package theme is the fixed registry of visual themes. The registry is
// built once at init and never mutated.
package theme

// ID identifies a registered theme.
type ID string

const (
	Cosmic ID = "cosmic"
	Coffee ID = "coffee"
	Ocean  ID = "ocean"
	Cyber  ID = "cyber"
)

// Default is the theme a new session starts with.
const Default = Cosmic

// Theme is a named bundle of styling tokens. The *Style fields keep the
// utility-class tokens of the web rendition; the hex fields drive the
// terminal and poster renderers.
type Theme struct {
	ID   ID
	Name string
	Icon string

	PrimaryStyle    string
	AccentStyle     string
	ButtonStyle     string
	BackgroundStyle string

	PrimaryFrom string
	PrimaryTo   string
	Accent      string
	Background  string
}

var registry = map[ID]Theme{
	Cosmic: {
		ID:              Cosmic,
		Name:            "ليالي سامكو",
		Icon:            "🌙",
		PrimaryStyle:    "from-amber-500 to-purple-600",
		AccentStyle:     "text-amber-400",
		ButtonStyle:     "bg-gradient-to-r from-amber-500 to-purple-600",
		BackgroundStyle: "bg-slate-950",
		PrimaryFrom:     "#f59e0b",
		PrimaryTo:       "#9333ea",
		Accent:          "#fbbf24",
		Background:      "#020617",
	},
	Coffee: {
		ID:              Coffee,
		Name:            "قهوة دافئة",
		Icon:            "☕",
		PrimaryStyle:    "from-orange-700 to-amber-900",
		AccentStyle:     "text-orange-300",
		ButtonStyle:     "bg-gradient-to-r from-orange-600 to-amber-800",
		BackgroundStyle: "bg-[#1a120b]",
		PrimaryFrom:     "#c2410c",
		PrimaryTo:       "#78350f",
		Accent:          "#fdba74",
		Background:      "#1a120b",
	},
	Ocean: {
		ID:              Ocean,
		Name:            "محيط أزرق",
		Icon:            "💧",
		PrimaryStyle:    "from-cyan-500 to-blue-600",
		AccentStyle:     "text-cyan-300",
		ButtonStyle:     "bg-gradient-to-r from-cyan-500 to-blue-600",
		BackgroundStyle: "bg-slate-900",
		PrimaryFrom:     "#06b6d4",
		PrimaryTo:       "#2563eb",
		Accent:          "#67e8f9",
		Background:      "#0f172a",
	},
	Cyber: {
		ID:              Cyber,
		Name:            "سايبر نيون",
		Icon:            "🖥️",
		PrimaryStyle:    "from-pink-500 to-rose-600",
		AccentStyle:     "text-pink-400",
		ButtonStyle:     "bg-gradient-to-r from-pink-600 to-purple-600",
		BackgroundStyle: "bg-black",
		PrimaryFrom:     "#ec4899",
		PrimaryTo:       "#e11d48",
		Accent:          "#f472b6",
		Background:      "#000000",
	},
}

// order is the menu order of the registry.
var order = []ID{Cosmic, Coffee, Ocean, Cyber}

// Lookup returns the theme registered under id.
func Lookup(id ID) (Theme, bool) {
	t, ok := registry[id]
	return t, ok
}

// MustLookup returns the theme for id, falling back to Default for ids
// outside the registry.
func MustLookup(id ID) Theme {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[Default]
}

// Valid reports whether id is registered.
func Valid(id ID) bool {
	_, ok := registry[id]
	return ok
}

// All returns every theme in menu order. The slice is a fresh copy.
func All() []Theme {
	out := make([]Theme, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}

// IDs returns the registered ids in menu order.
func IDs() []ID {
	return append([]ID(nil), order...)
}

// Next returns the id following current in menu order, wrapping around.
func Next(current ID) ID {
	for i, id := range order {
		if id == current {
			return order[(i+1)%len(order)]
		}
	}
	return Default
}
