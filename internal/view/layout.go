// Package view holds the page shell and session notices shared by modules.
package view

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

// AppName is shown in page titles.
const AppName = "CardForge"

// Title appends the application name to a page title.
func Title(title string) string {
	if title != "" {
		return title + " - " + AppName
	}
	return AppName
}

// Base wraps page content in the HTML document every page shares.
func Base(title string, flashes FlashData, body ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(Title(title))),
				g.Script(g.Src(tailwindSrc)),
				g.Script(g.Src(htmxSrc)),
			),
			g.Body(
				g.Class("min-h-screen bg-slate-100 text-slate-900"),
				NoticeRegion(flashes),
				cmp.Group(body),
			),
		),
	)
}

// NoticeRegion is the container notices are swapped into.
func NoticeRegion(flashes FlashData) cmp.Node {
	return g.Div(
		g.ID(NoticeRegionID),
		g.Class("fixed top-4 right-4 z-50 space-y-2 print:hidden"),
		cmp.Map(flashes.Success, func(msg string) cmp.Node { return Notice(msg, false) }),
		cmp.Map(flashes.Error, func(msg string) cmp.Node { return Notice(msg, true) }),
	)
}

// NoticeRegionID is the element id of the notice container.
const NoticeRegionID = "notices"

// OOBNotice appends a notice to the page's notice region from an htmx response.
func OOBNotice(msg string, isError bool) cmp.Node {
	return g.Div(
		g.ID(NoticeRegionID),
		hx.SwapOOB("beforeend"),
		Notice(msg, isError),
	)
}

// Notice is a single dismissible message.
func Notice(msg string, isError bool) cmp.Node {
	class := "rounded-lg px-4 py-3 shadow-lg text-sm bg-emerald-50 text-emerald-800 border border-emerald-200"
	role := "status"
	if isError {
		class = "rounded-lg px-4 py-3 shadow-lg text-sm bg-rose-50 text-rose-800 border border-rose-200"
		role = "alert"
	}
	return g.Div(
		g.Class(class),
		g.Role(role),
		cmp.Attr("data-notice", role),
		cmp.Text(msg),
	)
}
