package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// LayoutPage renders a full document around data.Content.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return component(func(ctx context.Context, h *html) {
		documentStart(h, data.Title, "bg-white text-gray-900 antialiased")

		h.component(ctx, Navbar(data.Nav, data.ActiveNav))
		h.open("main", "id", "content")
		h.component(ctx, data.Content)
		h.close("main")
		h.component(ctx, Footer(data.Nav, data.Session))

		h.open("div", "id", "modal")
		h.component(ctx, data.Modal)
		h.close("div")

		documentEnd(h)
	})
}

func documentStart(h *html, title, bodyClass string) {
	h.raw("<!DOCTYPE html>")
	h.open("html", "lang", "de")
	h.raw("<head>")
	h.raw(`<meta charset="utf-8">`)
	h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.el("title", title)
	h.raw(`<script src="https://cdn.tailwindcss.com"></script>`)
	h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
	h.raw(`<link rel="stylesheet" href="/assets/css/site.css">`)
	h.raw(`<script src="/assets/js/site.js" defer></script>`)
	h.raw("</head>")
	h.open("body", "class", bodyClass)
}

func documentEnd(h *html) {
	h.close("body")
	h.close("html")
}

// Navbar is the fixed top navigation. site.js toggles the scrolled class.
func Navbar(nav models.Navigation, active string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("nav", "id", "navbar", "class", "fixed top-0 inset-x-0 z-40 transition-colors duration-300 bg-transparent")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex items-center justify-between h-20")
		h.open("a", "href", "/", "class", "text-2xl font-black text-white")
		h.raw(`YOU <span class="text-red-500">Can</span>`)
		h.close("a")

		h.open("div", "class", "hidden md:flex items-center gap-8")
		for _, item := range nav.Items {
			h.el("a", item.Name, "href", item.URL, "class", navLinkClass(item.Name == active))
		}
		h.el("a", "Probetraining", "href", "/#kontakt",
			"class", "bg-red-600 hover:bg-red-700 text-white font-semibold px-4 py-2 rounded-md")
		h.close("div")

		h.close("div")
		h.close("nav")
	})
}

func navLinkClass(active bool) string {
	base := "text-white hover:text-red-500 font-medium transition-colors"
	if active {
		return cls(base, "text-red-500")
	}
	return base
}

// Footer closes every page and carries the discreet admin entry point.
func Footer(nav models.Navigation, session models.Session) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("footer", "class", "bg-gray-900 text-white py-12")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center")
		h.open("div", "class", "text-3xl font-black mb-4")
		h.raw(`YOU <span class="text-red-500">Can</span>`)
		h.close("div")
		h.el("p", "Lüdenscheids führende Kampfsportschule seit 2009", "class", "text-gray-400 mb-6")

		h.open("div", "class", "flex justify-center gap-6 mb-8")
		for _, item := range nav.Items {
			h.el("a", item.Name, "href", item.URL, "class", "text-gray-400 hover:text-white")
		}
		h.close("div")

		h.open("div", "class", "border-t border-gray-800 pt-8 flex items-center justify-center gap-3")
		h.el("p", "© 2024 YOU Can Kampfsportschule Lüdenscheid. Alle Rechte vorbehalten.", "class", "text-gray-500 text-sm")
		h.component(ctx, AdminAccess(session))
		h.close("div")

		h.close("div")
		h.close("footer")
	})
}

// AdminAccess is the small footer dot: a link into the panel for a logged
// in admin, otherwise a trigger for the login prompt.
func AdminAccess(session models.Session) templ.Component {
	return component(func(ctx context.Context, h *html) {
		dot := "inline-block w-2 h-2 rounded-full bg-gray-700 hover:bg-red-500 transition-colors"
		if session.Authenticated {
			h.open("a", "id", "admin-access", "href", "/admin", "title", "Admin", "class", cls(dot, "bg-red-600"))
			h.close("a")
			return
		}
		h.open("button", "id", "admin-access", "type", "button", "title", "Admin",
			"hx-get", "/admin/login", "hx-target", "#modal", "hx-swap", "innerHTML",
			"class", dot)
		h.close("button")
	})
}
