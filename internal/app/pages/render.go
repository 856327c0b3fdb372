// Package pages holds the HTML components of the site. Components are
// plain templ.Components so handlers render them the same way generated
// templates are rendered.
package pages

import (
	"context"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// html writes markup and remembers the first write error.
type html struct {
	w   io.Writer
	err error
}

func newHTML(w io.Writer) *html { return &html{w: w} }

func (h *html) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// text writes escaped character data.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// urlAttrs are attributes whose values are navigated to or fetched.
var urlAttrs = map[string]bool{
	"href":    true,
	"src":     true,
	"action":  true,
	"hx-get":  true,
	"hx-post": true,
}

// open writes a start tag. attrs alternate name, value; values are escaped
// and URL values with an unsafe scheme are replaced.
func (h *html) open(tag string, attrs ...string) {
	h.raw("<", tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		value := attrs[i+1]
		if urlAttrs[attrs[i]] {
			value = string(templ.URL(value))
		}
		h.raw(" ", attrs[i], `="`, templ.EscapeString(value), `"`)
	}
	h.raw(">")
}

func (h *html) close(tag string) {
	h.raw("</", tag, ">")
}

// el writes a complete element with escaped text content.
func (h *html) el(tag, content string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(content)
	h.close(tag)
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component wraps a write function into a templ.Component.
func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		fn(ctx, h)
		return h.err
	})
}

// cls merges Tailwind class lists, later classes winning conflicts.
func cls(classes ...string) string {
	return twmerge.Merge(strings.Join(classes, " "))
}
