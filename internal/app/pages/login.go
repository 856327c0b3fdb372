package pages

import (
	"context"

	"github.com/a-h/templ"
)

// LoginPrompt is the demo login dialog. It has no credential fields: the
// placeholder gate accepts anybody who presses the button.
func LoginPrompt() templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("div", "id", "login-prompt", "class", "fixed inset-0 bg-black/80 flex items-center justify-center z-50", "role", "dialog", "aria-modal", "true")
		h.open("div", "class", "bg-gray-800 p-8 rounded-lg shadow-xl max-w-sm w-full mx-4 text-center")
		h.open("h3", "class", "text-xl font-bold text-white mb-2")
		h.raw(`YOU Can <span class="text-red-500">Admin</span>`)
		h.close("h3")
		h.el("p", "Demo-Login für die Entwicklungsversion", "class", "text-gray-300 mb-6")

		h.open("div", "class", "space-y-3")
		h.open("form", "method", "post", "action", "/admin/login", "hx-post", "/admin/login")
		h.el("button", "Demo Login", "type", "submit", "class", "w-full bg-red-600 hover:bg-red-700 text-white font-semibold py-2 rounded-md")
		h.close("form")
		h.el("a", "Abbrechen", "href", "/", "data-dismiss", "modal",
			"class", "block w-full border border-gray-600 text-gray-300 hover:bg-gray-700 py-2 rounded-md")
		h.close("div")

		h.el("p", "Temporäres Demo-System für Entwicklung", "class", "text-xs text-gray-500 mt-4")
		h.close("div")
		h.close("div")
	})
}
