package render

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func decoration(style string, children ...cmp.Node) cmp.Node {
	return g.Div(
		g.Data("slot", "decoration"),
		g.Aria("hidden", "true"),
		g.Style("position:absolute;pointer-events:none;"+style),
		cmp.Group(children),
	)
}

// watermark repeats the logo, or the wordmark house glyph, as a faint
// oversized background mark.
func watermark(logo LogoSlot, style string, size int) cmp.Node {
	if logo.ImageURL != "" {
		return decoration(style,
			g.Img(g.Src(logo.ImageURL), g.Alt(""), g.Style("width:256px;height:256px;object-fit:contain;filter:grayscale(1) contrast(2);")),
		)
	}
	return decoration(style,
		g.Div(g.Data("wordmark", "watermark"), glyph(IconHome, size, "#ffffff", "0.5")),
	)
}

func glowDecorations(p Palette, side Side, logo LogoSlot) cmp.Node {
	if side == SideBack {
		return cmp.Group{
			decoration("inset:-10%;background:radial-gradient(circle at center,rgba(30,58,138,0.1),rgba(15,23,42,0.5),transparent);"),
			watermark(logo, "top:50%;left:50%;transform:translate(-50%,-50%);opacity:0.02;", 384),
			decoration("bottom:0;right:0;width:33%;height:4px;background:linear-gradient(to left," + p.Accent + ",transparent);"),
		}
	}
	return cmp.Group{
		watermark(logo, "right:-40px;bottom:-40px;opacity:0.03;transform:rotate(-12deg);", 320),
		decoration("top:-50px;right:-50px;width:256px;height:256px;border-radius:9999px;background:rgba(37,99,235,0.2);filter:blur(80px);"),
		decoration("bottom:-20px;left:-20px;width:192px;height:192px;border-radius:9999px;background:rgba(147,51,234,0.2);filter:blur(60px);"),
		decoration("bottom:0;left:0;width:100%;height:6px;background:linear-gradient(to right,#2563eb,#22d3ee," + p.AccentAlt + ");"),
	}
}

func waveDecorations(p Palette, side Side, logo LogoSlot) cmp.Node {
	top := "top:-60%;left:-20%;width:140%;height:120%;"
	if side == SideBack {
		top = "bottom:-70%;left:-20%;width:140%;height:120%;"
	}
	return cmp.Group{
		decoration(top + "border-radius:45%;background:linear-gradient(90deg," + p.Accent + "33," + p.AccentAlt + "33);"),
		watermark(logo, "right:-30px;top:-30px;opacity:0.04;", 260),
	}
}

func stripeDecorations(p Palette, side Side, logo LogoSlot) cmp.Node {
	stripes := decoration("inset:0;background:repeating-linear-gradient(45deg,transparent 0 14px,rgba(255,255,255,0.025) 14px 15px);")
	if side == SideBack {
		return stripes
	}
	return cmp.Group{
		stripes,
		decoration("top:0;left:0;width:4px;height:100%;background:" + p.Accent + ";"),
	}
}

func cornerDecorations(p Palette, side Side, logo LogoSlot) cmp.Node {
	corner := "top:0;right:0;border-left:140px solid transparent;border-top:140px solid " + p.AccentAlt + "40;"
	if side == SideBack {
		corner = "bottom:0;left:0;border-right:120px solid transparent;border-bottom:120px solid " + p.AccentAlt + "40;"
	}
	return cmp.Group{
		decoration("width:0;height:0;" + corner),
		decoration("bottom:0;left:0;width:100%;height:3px;background:linear-gradient(to right," + p.Accent + "," + p.AccentAlt + ");"),
	}
}

func frameDecorations(p Palette, side Side, logo LogoSlot) cmp.Node {
	return cmp.Group{
		decoration("inset:10px;border:1px solid " + p.Border + ";"),
		decoration("inset:0;background-image:radial-gradient(" + p.Border + " 1px,transparent 1px);background-size:12px 12px;opacity:0.5;"),
	}
}
