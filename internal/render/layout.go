// Package render turns card content into the front and back faces of a
// business card. Compose derives the layout slots every theme must honour;
// Render draws them as HTML with a theme's palette, icons and decorations.
package render

import (
	"errors"
	"fmt"

	"github.com/nfrund/cardforge/internal/card"
)

// ErrUnknownSide is returned for anything but "front" or "back".
var ErrUnknownSide = errors.New("unknown card side")

// Side is the face of the card being rendered.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// ParseSide resolves a form value to a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideFront, SideBack:
		return Side(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// Card size in CSS pixels: 3.5in x 2in at 150px per inch.
const (
	Width  = 525
	Height = 300
)

// Placeholders shown when the name or title is empty.
const (
	PlaceholderName  = "Your Name"
	PlaceholderTitle = "Job Title"
)

// Built-in wordmark used when no logo has been uploaded.
const (
	BrandName   = "SiteEase"
	BrandAccent = ".ca"
)

// IconKind identifies a contact row icon.
type IconKind string

const (
	IconEmail   IconKind = "email"
	IconPhone   IconKind = "phone"
	IconWebsite IconKind = "website"
	IconAddress IconKind = "address"
	IconHome    IconKind = "home"
)

// ContactRow is one line of the back face contact list.
type ContactRow struct {
	Icon  IconKind
	Label string
	Value string
}

// Wordmark is the built-in brand composition: a house glyph next to the name.
type Wordmark struct {
	Name   string
	Accent string
}

// LogoSlot holds exactly one of an uploaded image or the built-in wordmark.
type LogoSlot struct {
	ImageURL string
	Wordmark *Wordmark
}

// Layout is the theme-independent content of one card face.
type Layout struct {
	Side   Side
	Width  int
	Height int
	Logo   LogoSlot

	// Front face only.
	Name    string
	Title   string
	Tagline string

	// Back face only. Rows follow the fixed email, phone, website, address
	// order and are present only for non-empty fields.
	Contacts []ContactRow
}

// HasTagline reports whether the tagline row is shown.
func (l Layout) HasTagline() bool {
	return l.Tagline != ""
}

// Compose derives the layout of one face from the card content. It does not
// modify d.
func Compose(d card.Data, side Side) Layout {
	l := Layout{
		Side:   side,
		Width:  Width,
		Height: Height,
		Logo:   logoSlot(d),
	}

	switch side {
	case SideBack:
		l.Contacts = contactRows(d)
	default:
		l.Side = SideFront
		l.Name = orPlaceholder(d.FullName, PlaceholderName)
		l.Title = orPlaceholder(d.JobTitle, PlaceholderTitle)
		l.Tagline = d.Tagline
	}
	return l
}

func logoSlot(d card.Data) LogoSlot {
	if d.HasLogo() {
		return LogoSlot{ImageURL: d.LogoURL}
	}
	return LogoSlot{Wordmark: &Wordmark{Name: BrandName, Accent: BrandAccent}}
}

func contactRows(d card.Data) []ContactRow {
	candidates := []ContactRow{
		{Icon: IconEmail, Label: "Email", Value: d.Email},
		{Icon: IconPhone, Label: "Phone", Value: d.Phone},
		{Icon: IconWebsite, Label: "Website", Value: d.Website},
		{Icon: IconAddress, Label: "Office", Value: d.Address},
	}
	rows := make([]ContactRow, 0, len(candidates))
	for _, r := range candidates {
		if r.Value != "" {
			rows = append(rows, r)
		}
	}
	return rows
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
