// Package view renders the designer pages and htmx fragments.
package view

import (
	"context"
	"errors"
	"fmt"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/cardforge/internal/card"
	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/render"
	gview "github.com/nfrund/cardforge/internal/view"
)

// Element ids swapped by htmx.
const (
	DesignerID        = "designer"
	PreviewID         = "preview"
	TaglineGenerateID = "tagline-generate"
)

// The cancel control shows while the generate form has a request in flight
// (htmx marks it with htmx-request) or when the state says one is running.
const designerCSS = `[data-tagline-cancel] { display: none; }
#` + TaglineGenerateID + `.htmx-request ~ [data-tagline-cancel],
[data-generation-status="requesting"] [data-tagline-cancel] { display: inline-flex; }`

// Routes the forms post to.
const (
	FieldsPath      = "/card/fields"
	LogoPath        = "/card/logo"
	LogoRemovePath  = "/card/logo/remove"
	TaglinePath     = "/card/tagline"
	TaglineStopPath = "/card/tagline/cancel"
	SidePath        = "/card/side"
	ThemePath       = "/card/theme"
	PrintPath       = "/print"
	VCardPath       = "/card/vcard"
	QRPath          = "/card/qr.png"
)

var fieldLabels = map[card.Field]string{
	card.FieldCompanyName: "Company Name",
	card.FieldTagline:     "Tagline",
	card.FieldFullName:    "Full Name",
	card.FieldJobTitle:    "Job Title",
	card.FieldEmail:       "Email",
	card.FieldPhone:       "Phone",
	card.FieldWebsite:     "Website",
	card.FieldAddress:     "Office Address",
}

var fieldTypes = map[card.Field]string{
	card.FieldEmail:   "email",
	card.FieldPhone:   "tel",
	card.FieldWebsite: "text",
}

// Page is the full editor page.
func Page(s editor.State, flashes gview.FlashData) cmp.Node {
	return gview.Base("Designer", flashes,
		g.Header(
			g.Class("bg-white border-b border-slate-200 print:hidden"),
			g.Div(
				g.Class("max-w-6xl mx-auto px-6 py-4 flex items-center justify-between"),
				g.H1(
					g.Class("text-xl font-bold tracking-tight"),
					cmp.Text(render.BrandName),
					g.Span(g.Class("text-sky-500"), cmp.Text(render.BrandAccent)),
					g.Span(g.Class("ml-2 font-normal text-slate-500"), cmp.Text("Business Card Designer")),
				),
				g.A(g.Href(PrintPath), g.Target("_blank"),
					g.Class("rounded-lg bg-slate-900 px-4 py-2 text-sm font-semibold text-white hover:bg-slate-700"),
					cmp.Text("Print / Save PDF"),
				),
			),
		),
		g.StyleEl(cmp.Raw(designerCSS)),
		Designer(s),
	)
}

// Designer is the swappable region holding the controls and the preview.
func Designer(s editor.State) cmp.Node {
	return g.Main(
		g.ID(DesignerID),
		g.Class("max-w-6xl mx-auto px-6 py-8 grid gap-8 lg:grid-cols-[minmax(0,1fr)_560px]"),
		g.Section(
			g.Class("space-y-6 print:hidden"),
			themePicker(s.Theme),
			logoControls(s.Card),
			fieldForms(s),
			exportLinks(),
		),
		g.Section(
			g.Class("space-y-4"),
			sideToggle(s.Side),
			Preview(s),
		),
	)
}

// Preview is the rendered active side of the card.
func Preview(s editor.State) cmp.Node {
	t, err := render.Lookup(s.Theme)
	if err != nil {
		t = render.MustLookup(render.DefaultTheme)
	}
	return g.Div(
		g.ID(PreviewID),
		g.Class("flex justify-center"),
		g.Data("side", string(s.Side)),
		render.Render(s.Card, s.Side, t).Node,
	)
}

func panel(title string, children ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("rounded-xl bg-white p-5 shadow-sm border border-slate-200 space-y-3"),
		g.H2(g.Class("text-sm font-semibold uppercase tracking-wide text-slate-500"), cmp.Text(title)),
		cmp.Group(children),
	)
}

func swapDesigner(path string) cmp.Node {
	return cmp.Group{
		g.Method("post"),
		g.Action(path),
		hx.Post(path),
		hx.Target("#" + DesignerID),
		hx.Swap("outerHTML"),
	}
}

func themePicker(current render.ThemeID) cmp.Node {
	return panel("Theme",
		g.Form(
			swapDesigner(ThemePath),
			hx.Trigger("change"),
			g.Select(
				g.Name("theme"),
				g.Aria("label", "Theme"),
				g.Class("w-full rounded-lg border border-slate-300 px-3 py-2"),
				cmp.Map(render.Themes(), func(t render.Theme) cmp.Node {
					return g.Option(
						g.Value(string(t.ID())),
						cmp.If(t.ID() == current, g.Selected()),
						cmp.Text(t.Name()),
					)
				}),
			),
			g.NoScript(g.Button(g.Type("submit"), cmp.Text("Apply"))),
		),
	)
}

func sideToggle(current render.Side) cmp.Node {
	button := func(side render.Side, label string) cmp.Node {
		class := "rounded-md px-4 py-1.5 text-sm font-medium text-slate-600 hover:bg-white"
		if side == current {
			class = "rounded-md px-4 py-1.5 text-sm font-semibold bg-white shadow text-slate-900"
		}
		return g.Button(
			g.Type("submit"),
			g.Name("side"),
			g.Value(string(side)),
			g.Class(class),
			cmp.If(side == current, g.Aria("pressed", "true")),
			cmp.Text(label),
		)
	}
	return g.Form(
		swapDesigner(SidePath),
		g.Class("flex justify-center print:hidden"),
		g.Div(
			g.Class("inline-flex rounded-lg bg-slate-200 p-1"),
			button(render.SideFront, "Front"),
			button(render.SideBack, "Back"),
		),
	)
}

func logoControls(d card.Data) cmp.Node {
	return panel("Logo",
		g.Form(
			swapDesigner(LogoPath),
			g.EncType("multipart/form-data"),
			hx.Trigger("change"),
			g.Input(
				g.Type("file"),
				g.Name("logo"),
				g.Accept("image/*"),
				g.Aria("label", "Upload logo"),
				g.Class("block w-full text-sm text-slate-600 file:mr-4 file:rounded-lg file:border-0 file:bg-slate-900 file:px-4 file:py-2 file:text-white"),
			),
			g.NoScript(g.Button(g.Type("submit"), cmp.Text("Upload"))),
		),
		cmp.If(d.HasLogo(),
			g.Form(
				swapDesigner(LogoRemovePath),
				g.Button(g.Type("submit"), g.Class("text-sm text-rose-600 hover:underline"), cmp.Text("Remove logo")),
			),
		),
	)
}

func fieldForms(s editor.State) cmp.Node {
	var nodes []cmp.Node
	for _, f := range card.Fields() {
		value, _ := s.Card.Get(f)
		nodes = append(nodes, fieldForm(f, value))
		if f == card.FieldTagline {
			nodes = append(nodes, taglineControls(s.Generation))
		}
	}
	return panel("Details", nodes...)
}

func fieldForm(f card.Field, value string) cmp.Node {
	inputType, ok := fieldTypes[f]
	if !ok {
		inputType = "text"
	}
	id := "input-" + string(f)
	return g.Form(
		g.ID("field-"+string(f)),
		g.Method("post"),
		g.Action(FieldsPath),
		hx.Post(FieldsPath),
		hx.Trigger("input delay:250ms, submit"),
		hx.Target("#"+PreviewID),
		hx.Swap("outerHTML"),
		g.Input(g.Type("hidden"), g.Name("field"), g.Value(string(f))),
		g.Label(g.For(id), g.Class("block text-sm font-medium text-slate-700"), cmp.Text(fieldLabels[f])),
		g.Input(
			g.ID(id),
			g.Type(inputType),
			g.Name("value"),
			g.Value(value),
			g.AutoComplete("off"),
			g.Class("mt-1 w-full rounded-lg border border-slate-300 px-3 py-2"),
		),
	)
}

func taglineControls(gen editor.Generation) cmp.Node {
	busy := gen.Status == editor.StatusRequesting
	return g.Div(
		g.Class("flex items-center gap-3"),
		g.Data("generation-status", string(gen.Status)),
		g.Form(
			g.ID(TaglineGenerateID),
			swapDesigner(TaglinePath),
			g.Button(
				g.Type("submit"),
				g.Class("rounded-lg bg-sky-600 px-3 py-1.5 text-sm font-semibold text-white hover:bg-sky-500 disabled:opacity-50"),
				cmp.Attr("hx-disabled-elt", "this"),
				cmp.If(busy, g.Disabled()),
				cmp.Text("Generate tagline"),
			),
		),
		// Replacing the pending generate request drops its response; the
		// cancel response carries the settled state instead.
		g.Form(
			g.Data("tagline-cancel", ""),
			swapDesigner(TaglineStopPath),
			cmp.Attr("hx-sync", "#"+TaglineGenerateID+":replace"),
			g.Button(g.Type("submit"), g.Class("text-sm text-slate-500 hover:underline"), cmp.Text("Cancel")),
		),
		generationStatus(gen),
	)
}

func generationStatus(gen editor.Generation) cmp.Node {
	var msg string
	switch gen.Status {
	case editor.StatusRequesting:
		msg = "Generating..."
	case editor.StatusFailed:
		msg = "Suggestion service unavailable; used a fallback."
		if errors.Is(gen.Err, context.Canceled) {
			msg = "Tagline request cancelled."
		}
	default:
		return nil
	}
	return g.Span(
		g.Class("text-xs text-slate-500"),
		g.Data("generation", string(gen.Status)),
		cmp.Text(msg),
	)
}

func exportLinks() cmp.Node {
	return panel("Share",
		g.Div(
			g.Class("flex items-center gap-4"),
			g.Img(
				g.Src(fmt.Sprintf("%s?size=%d", QRPath, 120)),
				g.Alt("QR code with this card's contact details"),
				g.Width("120"), g.Height("120"),
			),
			g.A(g.Href(VCardPath), g.Class("text-sm font-medium text-sky-700 hover:underline"), cmp.Text("Download contact (.vcf)")),
		),
	)
}
