package pages

import (
	"context"

	"github.com/a-h/templ"
)

func NotFoundPage() templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "class", "min-h-screen flex flex-col items-center justify-center bg-black text-white px-4")
		h.el("h1", "404", "class", "text-7xl font-black text-red-500 mb-4")
		h.el("p", "Diese Seite gibt es nicht.", "class", "text-xl text-gray-300 mb-8")
		h.el("a", "Zurück zur Startseite", "href", "/", "class", "bg-red-600 hover:bg-red-700 px-6 py-3 rounded-md font-semibold")
		h.close("section")
	})
}
