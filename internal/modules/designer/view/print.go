package view

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/render"
	gview "github.com/nfrund/cardforge/internal/view"
)

const sheetCSS = `@page { size: auto; margin: 12mm; }
body { background: #fff; margin: 0; padding: 12mm 0; }
.print-face { break-inside: avoid; page-break-inside: avoid; margin: 0 auto 12mm; width: fit-content; }
.business-card { -webkit-print-color-adjust: exact; print-color-adjust: exact; }`

// PrintPage stacks the front and the back face and opens the print dialog.
// The active side does not matter here.
func PrintPage(s editor.State) cmp.Node {
	t, err := render.Lookup(s.Theme)
	if err != nil {
		t = render.MustLookup(render.DefaultTheme)
	}
	return Sheet(gview.Title("Print"), render.RenderBoth(s.Card, t), true)
}

// Sheet is a standalone HTML document showing faces top to bottom. With
// autoPrint the browser print dialog opens once the page has loaded.
func Sheet(title string, faces []render.Face, autoPrint bool) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.TitleEl(cmp.Text(title)),
				g.StyleEl(cmp.Raw(sheetCSS)),
			),
			g.Body(
				cmp.Map(faces, func(f render.Face) cmp.Node {
					return g.Div(
						g.Class("print-face"),
						g.Data("face", string(f.Layout.Side)),
						f.Node,
					)
				}),
				cmp.If(autoPrint,
					g.Script(cmp.Raw(`window.addEventListener("load", function () { window.print(); });`)),
				),
			),
		),
	)
}
