package render

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// glyphs are 24x24 stroke icons.
var glyphs = map[IconKind][]cmp.Node{
	IconEmail: {
		svgEl("rect", cmp.Attr("width", "20"), cmp.Attr("height", "16"), cmp.Attr("x", "2"), cmp.Attr("y", "4"), cmp.Attr("rx", "2")),
		svgPath("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	},
	IconPhone: {
		svgPath("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"),
	},
	IconWebsite: {
		svgEl("circle", cmp.Attr("cx", "12"), cmp.Attr("cy", "12"), cmp.Attr("r", "10")),
		svgPath("M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"),
		svgPath("M2 12h20"),
	},
	IconAddress: {
		svgPath("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"),
		svgEl("circle", cmp.Attr("cx", "12"), cmp.Attr("cy", "10"), cmp.Attr("r", "3")),
	},
	IconHome: {
		svgPath("m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"),
		svgEl("polyline", cmp.Attr("points", "9 22 9 12 15 12 15 22")),
	},
}

func svgEl(name string, attrs ...cmp.Node) cmp.Node {
	return cmp.El(name, attrs...)
}

func svgPath(d string) cmp.Node {
	return svgEl("path", cmp.Attr("d", d))
}

// glyph draws the raw icon at size px in the given color.
func glyph(kind IconKind, size int, color, stroke string) cmp.Node {
	px := strconv.Itoa(size)
	return cmp.El("svg",
		cmp.Attr("xmlns", "http://www.w3.org/2000/svg"),
		cmp.Attr("viewBox", "0 0 24 24"),
		cmp.Attr("width", px),
		cmp.Attr("height", px),
		cmp.Attr("fill", "none"),
		cmp.Attr("stroke", color),
		cmp.Attr("stroke-width", stroke),
		cmp.Attr("stroke-linecap", "round"),
		cmp.Attr("stroke-linejoin", "round"),
		g.Aria("hidden", "true"),
		g.Data("icon", string(kind)),
		cmp.Group(glyphs[kind]),
	)
}

// contactIcon draws a contact glyph inside the theme's icon container.
func contactIcon(t Theme, kind IconKind) cmp.Node {
	p := t.Palette()
	style := "width:32px;height:32px;display:flex;align-items:center;justify-content:center;flex-shrink:0;"
	switch t.IconShape() {
	case ShapeRoundedSquare:
		style += "border-radius:8px;background:" + p.Chip + ";border:1px solid " + p.Border + ";"
	case ShapeCircle:
		style += "border-radius:9999px;background:" + p.Chip + ";"
	case ShapeOutline:
		style += "border-radius:2px;border:1px solid " + p.Border + ";"
	case ShapeBare:
		style += "width:20px;"
	}
	return g.Div(
		g.Data("shape", string(t.IconShape())),
		g.Style(style),
		glyph(kind, 16, p.Accent, t.IconStroke()),
	)
}
