package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// BannerKind selects the banner colors.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
	BannerWarning BannerKind = "warning"
)

var bannerClasses = map[BannerKind]string{
	BannerSuccess: "bg-green-900/60 border-green-500 text-green-100",
	BannerError:   "bg-red-900/60 border-red-500 text-red-100",
	BannerWarning: "bg-yellow-900/60 border-yellow-500 text-yellow-100",
}

// Banner is the inline answer to a form submission.
func Banner(kind BannerKind, title, message string, fields []models.FieldError) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("div", "class", cls("banner border-l-4 p-4 rounded", bannerClasses[kind]), "role", "alert", "data-kind", string(kind))
		h.el("p", title, "class", "font-semibold")
		if message != "" {
			h.el("p", message, "class", "text-sm mt-1")
		}
		if len(fields) > 0 {
			h.open("ul", "class", "text-sm mt-2 list-disc list-inside")
			for _, f := range fields {
				h.el("li", f.Message, "data-field", f.Field)
			}
			h.close("ul")
		}
		h.close("div")
	})
}
