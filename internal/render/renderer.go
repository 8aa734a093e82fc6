package render

import (
	"fmt"
	"strings"

	"github.com/nfrund/cardforge/internal/card"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Face is one rendered side of a card.
type Face struct {
	Layout Layout
	Theme  ThemeID
	Node   cmp.Node
}

// HTML renders the face markup to a string.
func (f Face) HTML() (string, error) {
	var sb strings.Builder
	if err := f.Node.Render(&sb); err != nil {
		return "", fmt.Errorf("failed to render %s face: %w", f.Layout.Side, err)
	}
	return sb.String(), nil
}

// Render draws one face of the card in the given theme. It is pure: the
// same inputs always give the same markup and d is never modified.
func Render(d card.Data, side Side, t Theme) Face {
	l := Compose(d, side)
	return Face{Layout: l, Theme: t.ID(), Node: face(l, t)}
}

// RenderBoth returns the front then the back face, the order used for
// printing.
func RenderBoth(d card.Data, t Theme) []Face {
	return []Face{Render(d, SideFront, t), Render(d, SideBack, t)}
}

func face(l Layout, t Theme) cmp.Node {
	p := t.Palette()
	s := t.Spacing()

	style := fmt.Sprintf(
		"position:relative;overflow:hidden;box-sizing:border-box;width:%dpx;height:%dpx;padding:%dpx;border-radius:%dpx;border:1px solid %s;background:%s;color:%s;display:flex;flex-direction:column;font-family:ui-sans-serif,system-ui,sans-serif;",
		l.Width, l.Height, s.Padding, s.Radius, p.Border, p.Background, p.Text,
	)

	var content cmp.Node
	if l.Side == SideBack {
		content = backContent(l, t)
	} else {
		content = frontContent(l, t)
	}

	return g.Div(
		g.Class("business-card business-card-"+string(l.Side)),
		g.Data("side", string(l.Side)),
		g.Data("theme", string(t.ID())),
		g.Style(style),
		t.Decorations(l.Side, l.Logo),
		content,
	)
}

func frontContent(l Layout, t Theme) cmp.Node {
	p := t.Palette()
	return cmp.Group{
		g.Div(
			g.Style("position:relative;z-index:10;display:flex;align-items:center;justify-content:space-between;width:100%;"),
			logo(l.Logo, t, 48),
		),
		g.Div(
			g.Style("position:relative;z-index:10;margin-top:auto;margin-bottom:8px;"),
			g.H1(
				g.Data("slot", "name"),
				g.Style("margin:0 0 8px 0;font-size:36px;font-weight:700;letter-spacing:-0.025em;line-height:1.1;color:"+p.Text+";"),
				cmp.Text(l.Name),
			),
			g.P(
				g.Data("slot", "title"),
				g.Style("margin:0;display:flex;align-items:center;gap:8px;font-size:12px;font-weight:600;letter-spacing:0.05em;text-transform:uppercase;color:"+p.Accent+";"),
				g.Span(g.Aria("hidden", "true"), g.Style("display:inline-block;width:32px;height:2px;background:"+p.Accent+";")),
				cmp.Text(l.Title),
			),
			cmp.If(l.HasTagline(),
				g.P(
					g.Data("slot", "tagline"),
					g.Style("margin:16px 0 0 0;font-size:14px;font-weight:300;font-style:italic;opacity:0.9;color:"+p.Muted+";"),
					cmp.Text(`"`+l.Tagline+`"`),
				),
			),
		),
	}
}

func backContent(l Layout, t Theme) cmp.Node {
	p := t.Palette()
	s := t.Spacing()
	return g.Div(
		g.Style("position:relative;z-index:10;width:100%;height:100%;display:flex;flex-direction:column;justify-content:space-between;"),
		g.Div(
			g.Style("display:flex;justify-content:flex-end;align-items:flex-start;"),
			g.Div(g.Style("opacity:0.5;transform:scale(0.75);transform-origin:top right;"), logo(l.Logo, t, 48)),
		),
		g.Ul(
			g.Data("slot", "contacts"),
			g.Style(fmt.Sprintf("list-style:none;margin:0;padding:0;display:flex;flex-direction:column;gap:%dpx;", s.ContactGap)),
			cmp.Map(l.Contacts, func(r ContactRow) cmp.Node {
				return g.Li(
					g.Data("contact", string(r.Icon)),
					g.Style("display:flex;align-items:center;gap:12px;"),
					contactIcon(t, r.Icon),
					g.Div(
						g.Style("display:flex;flex-direction:column;"),
						g.Span(
							g.Style("font-size:9px;text-transform:uppercase;letter-spacing:0.05em;font-weight:600;line-height:1;margin-bottom:2px;color:"+p.Muted+";"),
							cmp.Text(r.Label),
						),
						g.Span(
							g.Style("font-size:12px;font-weight:500;letter-spacing:0.025em;color:"+p.Text+";"),
							cmp.Text(r.Value),
						),
					),
				)
			}),
		),
	)
}

// logo draws the uploaded image or, when there is none, the wordmark.
func logo(slot LogoSlot, t Theme, height int) cmp.Node {
	if slot.ImageURL != "" {
		return g.Img(
			g.Data("slot", "logo"),
			g.Src(slot.ImageURL),
			g.Alt("Logo"),
			g.Style(fmt.Sprintf("height:%dpx;object-fit:contain;", height)),
		)
	}

	p := t.Palette()
	wm := slot.Wordmark
	if wm == nil {
		wm = &Wordmark{Name: BrandName, Accent: BrandAccent}
	}
	return g.Div(
		g.Data("slot", "logo"),
		g.Data("wordmark", "logo"),
		g.Style("display:flex;align-items:center;gap:8px;"),
		g.Div(
			g.Style("width:40px;height:40px;border-radius:8px;background:#2563eb;display:flex;align-items:center;justify-content:center;box-shadow:0 10px 15px -3px rgba(30,58,138,0.5);"),
			glyph(IconHome, 20, "#ffffff", "2.5"),
		),
		g.Div(
			g.Style("display:flex;align-items:baseline;line-height:1;font-size:24px;font-weight:700;letter-spacing:-0.025em;"),
			g.Span(g.Style("color:"+p.Text+";"), cmp.Text(wm.Name)),
			g.Span(g.Style("color:"+p.Accent+";"), cmp.Text(wm.Accent)),
		),
	)
}
