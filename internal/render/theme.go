package render

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
)

// ErrUnknownTheme is returned by Lookup for ids outside the closed set.
var ErrUnknownTheme = errors.New("unknown card theme")

// ThemeID names one of the built-in themes.
type ThemeID string

const (
	ThemeMidnight ThemeID = "midnight"
	ThemeAurora   ThemeID = "aurora"
	ThemeGraphite ThemeID = "graphite"
	ThemeEmber    ThemeID = "ember"
	ThemePaper    ThemeID = "paper"
)

// DefaultTheme is used when nothing else is configured.
const DefaultTheme = ThemeMidnight

// Palette holds the CSS colors a theme paints with.
type Palette struct {
	Background string // CSS background of the card, may be a gradient
	Text       string
	Muted      string
	Accent     string
	AccentAlt  string
	Chip       string // icon container fill
	Border     string
}

// Spacing holds the per-theme padding and gaps in pixels.
type Spacing struct {
	Padding    int
	ContactGap int
	Radius     int
}

// IconShape is the container drawn around a contact icon.
type IconShape string

const (
	ShapeRoundedSquare IconShape = "rounded-square"
	ShapeCircle        IconShape = "circle"
	ShapeOutline       IconShape = "outline"
	ShapeBare          IconShape = "bare"
)

// Theme is a visual skin for the card faces. Every theme draws the same
// layout slots; only colors, icon shapes, decorations and spacing differ.
type Theme interface {
	ID() ThemeID
	Name() string
	Palette() Palette
	Spacing() Spacing
	IconShape() IconShape
	IconStroke() string
	// Decorations returns purely visual background elements for a face.
	Decorations(side Side, logo LogoSlot) cmp.Node
}

type variant struct {
	id          ThemeID
	palette     Palette
	spacing     Spacing
	shape       IconShape
	stroke      string
	decorations func(p Palette, side Side, logo LogoSlot) cmp.Node
}

func (v variant) ID() ThemeID          { return v.id }
func (v variant) Name() string         { return cases.Title(language.English).String(string(v.id)) }
func (v variant) Palette() Palette     { return v.palette }
func (v variant) Spacing() Spacing     { return v.spacing }
func (v variant) IconShape() IconShape { return v.shape }
func (v variant) IconStroke() string   { return v.stroke }

func (v variant) Decorations(side Side, logo LogoSlot) cmp.Node {
	if v.decorations == nil {
		return nil
	}
	return v.decorations(v.palette, side, logo)
}

var themes = []variant{
	{
		id: ThemeMidnight,
		palette: Palette{
			Background: "linear-gradient(135deg,#020617 0%,#0f172a 50%,#1e1b4b 100%)",
			Text:       "#f1f5f9",
			Muted:      "#94a3b8",
			Accent:     "#60a5fa",
			AccentAlt:  "#9333ea",
			Chip:       "rgba(30,41,59,0.8)",
			Border:     "rgba(255,255,255,0.1)",
		},
		spacing:     Spacing{Padding: 32, ContactGap: 16, Radius: 12},
		shape:       ShapeRoundedSquare,
		stroke:      "2",
		decorations: glowDecorations,
	},
	{
		id: ThemeAurora,
		palette: Palette{
			Background: "linear-gradient(160deg,#042f2e 0%,#0f766e 55%,#155e75 100%)",
			Text:       "#ecfeff",
			Muted:      "#99f6e4",
			Accent:     "#5eead4",
			AccentAlt:  "#a78bfa",
			Chip:       "rgba(4,47,46,0.6)",
			Border:     "rgba(94,234,212,0.25)",
		},
		spacing:     Spacing{Padding: 30, ContactGap: 14, Radius: 16},
		shape:       ShapeCircle,
		stroke:      "1.75",
		decorations: waveDecorations,
	},
	{
		id: ThemeGraphite,
		palette: Palette{
			Background: "#18181b",
			Text:       "#fafafa",
			Muted:      "#a1a1aa",
			Accent:     "#f4f4f5",
			AccentAlt:  "#71717a",
			Chip:       "transparent",
			Border:     "#3f3f46",
		},
		spacing:     Spacing{Padding: 28, ContactGap: 12, Radius: 4},
		shape:       ShapeOutline,
		stroke:      "1.5",
		decorations: stripeDecorations,
	},
	{
		id: ThemeEmber,
		palette: Palette{
			Background: "linear-gradient(135deg,#1c1917 0%,#292524 60%,#431407 100%)",
			Text:       "#fff7ed",
			Muted:      "#fdba74",
			Accent:     "#fb923c",
			AccentAlt:  "#dc2626",
			Chip:       "rgba(67,20,7,0.7)",
			Border:     "rgba(251,146,60,0.3)",
		},
		spacing:     Spacing{Padding: 32, ContactGap: 14, Radius: 10},
		shape:       ShapeRoundedSquare,
		stroke:      "2.25",
		decorations: cornerDecorations,
	},
	{
		id: ThemePaper,
		palette: Palette{
			Background: "#fafaf9",
			Text:       "#1c1917",
			Muted:      "#78716c",
			Accent:     "#2563eb",
			AccentAlt:  "#1e3a8a",
			Chip:       "transparent",
			Border:     "#e7e5e4",
		},
		spacing:     Spacing{Padding: 36, ContactGap: 12, Radius: 2},
		shape:       ShapeBare,
		stroke:      "1.5",
		decorations: frameDecorations,
	},
}

// Themes returns the built-in themes in a stable order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	for i, t := range themes {
		out[i] = t
	}
	return out
}

// Lookup returns the theme with the given id.
func Lookup(id ThemeID) (Theme, error) {
	for _, t := range themes {
		if t.id == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, string(id))
}

// MustLookup is Lookup for ids known at compile time.
func MustLookup(id ThemeID) Theme {
	t, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return t
}
