package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// AdminTab is one entry of the admin panel's tab bar.
type AdminTab struct {
	Key   string
	Label string
}

// AdminTabs in display order. The first one is the default.
var AdminTabs = []AdminTab{
	{Key: "overview", Label: "Übersicht"},
	{Key: "sportarten", Label: "Kampfsportarten"},
	{Key: "trainer", Label: "Trainer"},
	{Key: "kurse", Label: "Kurse"},
	{Key: "preise", Label: "Preise"},
	{Key: "bewertungen", Label: "Bewertungen"},
	{Key: "anfragen", Label: "Anfragen"},
}

// LookupAdminTab reports whether key names a tab.
func LookupAdminTab(key string) (AdminTab, bool) {
	for _, t := range AdminTabs {
		if t.Key == key {
			return t, true
		}
	}
	return AdminTab{}, false
}

// AdminPage is the full admin document.
func AdminPage(session models.Session, active string, content templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		documentStart(h, "YOU Can Admin", "min-h-screen bg-gray-50")
		h.component(ctx, adminHeader(session))
		h.component(ctx, demoNotice())
		h.open("div", "id", "admin-body", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8")
		h.component(ctx, AdminBody(active, content))
		h.close("div")
		documentEnd(h)
	})
}

// AdminBody is the tab bar plus the active tab; htmx swaps it on tab change.
func AdminBody(active string, content templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("nav", "class", "flex flex-wrap gap-2 mb-6 bg-white p-1 rounded-lg shadow-sm", "role", "tablist")
		for _, t := range AdminTabs {
			c := "px-4 py-2 rounded-md text-sm font-medium text-gray-600 hover:bg-gray-100"
			selected := "false"
			if t.Key == active {
				c = cls(c, "bg-red-600 text-white hover:bg-red-600")
				selected = "true"
			}
			h.el("a", t.Label,
				"href", "/admin?tab="+t.Key,
				"hx-get", "/admin/tabs/"+t.Key,
				"hx-target", "#admin-body",
				"hx-push-url", "/admin?tab="+t.Key,
				"role", "tab",
				"aria-selected", selected,
				"data-tab", t.Key,
				"class", c)
		}
		h.close("nav")
		h.open("div", "id", "admin-tab", "data-active", active)
		h.component(ctx, content)
		h.close("div")
	})
}

func adminHeader(session models.Session) templ.Component {
	return component(func(ctx context.Context, h *html) {
		name := ""
		if session.Identity != nil {
			name = session.Identity.DisplayName
		}
		h.open("header", "class", "bg-white shadow-sm border-b")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex justify-between items-center h-16")
		h.open("div", "class", "flex items-center")
		h.el("a", "← Zurück zur Website", "href", "/", "class", "mr-4 text-sm text-gray-600 hover:text-gray-900")
		h.open("h1", "class", "text-2xl font-bold text-gray-900")
		h.raw(`YOU Can <span class="text-red-500">Admin</span>`)
		h.close("h1")
		h.close("div")
		h.open("div", "class", "flex items-center gap-4")
		h.el("span", "Willkommen, "+name, "id", "admin-welcome", "class", "text-sm text-gray-600")
		h.open("form", "method", "post", "action", "/admin/logout", "hx-post", "/admin/logout")
		h.el("button", "Abmelden", "type", "submit", "class", "border border-gray-300 px-3 py-1.5 rounded-md text-sm hover:bg-gray-50")
		h.close("form")
		h.close("div")
		h.close("div")
		h.close("header")
	})
}

func demoNotice() templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("div", "id", "demo-notice", "class", "bg-blue-50 border-b border-blue-200")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-3 flex items-center justify-between")
		h.open("p", "class", "text-sm text-blue-700")
		h.el("strong", "Demo-Modus:")
		h.text(" Dieser Admin-Bereich zeigt die Inhalte der Website nur an. Bearbeiten ist noch nicht möglich.")
		h.close("p")
		h.el("button", "×", "type", "button", "data-dismiss", "demo-notice", "aria-label", "Hinweis schließen",
			"class", "text-blue-400 hover:text-blue-500 text-xl leading-none")
		h.close("div")
		h.close("div")
	})
}

func card(h *html, title string, body func()) {
	h.open("div", "class", "bg-white rounded-lg shadow-sm border p-6")
	if title != "" {
		h.el("h3", title, "class", "text-lg font-semibold mb-4")
	}
	body()
	h.close("div")
}

// OverviewTab shows collection counts and the roadmap.
func OverviewTab(snap models.Snapshot, requests int) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("div", "class", "grid md:grid-cols-2 lg:grid-cols-5 gap-6 mb-8")
		for _, s := range []struct {
			title, hint string
			n           int
		}{
			{"Kampfsportarten", "Aktive Sportarten", len(snap.SportTypes)},
			{"Trainer", "Qualifizierte Trainer", len(snap.Trainers)},
			{"Kurse", "Wöchentliche Kurse", len(snap.Courses)},
			{"Pakete", "Preispakete", len(snap.PricePackages)},
			{"Anfragen", "Probetraining-Anfragen", requests},
		} {
			h.open("div", "class", "stat-card bg-white rounded-lg shadow-sm border p-6", "data-stat", s.title)
			h.el("p", s.title, "class", "text-sm font-medium")
			h.el("div", strconv.Itoa(s.n), "class", "text-2xl font-bold")
			h.el("p", s.hint, "class", "text-xs text-gray-500")
			h.close("div")
		}
		h.close("div")

		card(h, "Nächste Schritte", func() {
			h.open("div", "class", "bg-yellow-50 border border-yellow-200 rounded-lg p-4")
			h.el("h4", "In Entwicklung", "class", "font-semibold text-yellow-800 mb-2")
			h.el("p", "Dieser Admin-Bereich zeigt aktuell nur Demo-Daten. Geplant sind:", "class", "text-yellow-700 mb-3")
			h.open("ul", "class", "text-yellow-700 space-y-1")
			for _, item := range []string{
				"Echte Datenbearbeitung",
				"Bildupload für Trainer und Kurse",
				"Buchungsverwaltung",
				"Mitgliederverwaltung",
				"Automatische Backups",
			} {
				h.el("li", "• "+item)
			}
			h.close("ul")
			h.close("div")
		})
	})
}

func SportTypesTab(sports []models.SportType) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.el("h2", "Kampfsportarten verwalten", "class", "text-2xl font-bold mb-6")
		h.open("div", "class", "grid gap-6")
		for _, s := range sports {
			card(h, "", func() {
				h.open("div", "class", "flex gap-6 admin-item")
				h.open("img", "src", s.ImageURL, "alt", s.Name, "class", "w-32 h-24 object-cover rounded")
				h.open("div")
				h.el("h3", s.Name, "class", "text-xl font-semibold mb-2")
				h.el("p", s.Description, "class", "text-gray-600 mb-3")
				for _, tag := range s.Highlights {
					h.el("span", tag, "class", "inline-block border rounded-full px-2 py-0.5 text-xs mr-1")
				}
				h.close("div")
				h.close("div")
			})
		}
		h.close("div")
	})
}

func TrainersTab(trainers []models.Trainer) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.el("h2", "Trainer verwalten", "class", "text-2xl font-bold mb-6")
		h.open("div", "class", "grid md:grid-cols-2 gap-6")
		for _, t := range trainers {
			card(h, "", func() {
				h.open("div", "class", "flex gap-4 admin-item")
				h.open("img", "src", t.ImageURL, "alt", t.Name, "class", "w-20 h-20 object-cover rounded-full")
				h.open("div")
				h.el("h3", t.Name, "class", "text-lg font-semibold")
				h.el("p", t.Role, "class", "text-red-600 font-medium")
				h.el("p", t.Description, "class", "text-gray-600 text-sm mt-1")
				h.close("div")
				h.close("div")
			})
		}
		h.close("div")
	})
}

func CoursesTab(courses []models.Course) templ.Component {
	return component(func(ctx context.Context, h *html) {
		card(h, "Kursplan verwalten", func() {
			h.open("div", "class", "space-y-2")
			for _, c := range courses {
				h.open("div", "class", "admin-item flex justify-between items-center p-3 bg-gray-50 rounded")
				h.open("div")
				h.el("span", c.Title, "class", "font-medium")
				h.el("span", "("+c.Day+", "+c.Time+")", "class", "text-gray-500 ml-2")
				h.close("div")
				h.el("span", c.TrainerName, "class", "border rounded-full px-2 py-0.5 text-xs")
				h.close("div")
			}
			h.close("div")
		})
	})
}

func PricesTab(packages []models.PricePackage) templ.Component {
	return component(func(ctx context.Context, h *html) {
		card(h, "Preispakete verwalten", func() {
			h.open("div", "class", "grid md:grid-cols-3 gap-4")
			for _, p := range packages {
				c := "admin-item border rounded-lg p-4"
				if p.Highlight {
					c = cls(c, "border-red-500")
				}
				h.open("div", "class", c)
				h.el("h4", p.Title, "class", "font-semibold")
				h.el("p", FormatEuro(p.MonthlyCents), "class", "text-2xl font-bold text-red-600")
				h.el("p", p.Description, "class", "text-sm text-gray-600")
				h.close("div")
			}
			h.close("div")
		})
	})
}

func TestimonialsTab(testimonials []models.Testimonial) templ.Component {
	return component(func(ctx context.Context, h *html) {
		card(h, "Kundenbewertungen", func() {
			h.open("div", "class", "space-y-4")
			for _, t := range testimonials {
				h.open("div", "class", "admin-item border-l-4 border-red-500 pl-4 py-2")
				h.open("div", "class", "flex items-center gap-2 mb-1")
				h.el("span", t.Author, "class", "font-medium")
				h.el("span", t.ClassName, "class", "border rounded-full px-2 py-0.5 text-xs")
				h.el("span", Stars(t.Rating), "class", "text-yellow-400")
				h.close("div")
				h.el("p", "\""+t.Quote+"\"", "class", "text-gray-600 italic")
				h.close("div")
			}
			h.close("div")
		})
	})
}

var berlin = loadBerlin()

// RequestsTab lists trial requests, newest first.
func RequestsTab(requests []models.TrialRequest) templ.Component {
	return component(func(ctx context.Context, h *html) {
		card(h, "Probetraining-Anfragen", func() {
			if len(requests) == 0 {
				h.el("p", "Noch keine Anfragen eingegangen.", "class", "text-gray-500 empty")
				return
			}
			h.open("table", "class", "w-full text-sm")
			h.raw(`<thead><tr class="text-left text-gray-500"><th class="py-2">Eingang</th><th>Name</th><th>Kontakt</th><th>Kampfsport</th><th>Nachricht</th></tr></thead>`)
			h.open("tbody")
			for _, r := range requests {
				h.open("tr", "class", "admin-item border-t align-top", "data-id", r.ID.String())
				h.el("td", r.CreatedAt.In(berlin).Format("02.01.2006 15:04"), "class", "py-2 whitespace-nowrap")
				h.el("td", r.FullName())
				h.open("td")
				h.el("a", r.Email, "href", "mailto:"+r.Email, "class", "text-red-600")
				if r.Phone != "" {
					h.raw("<br>")
					h.text(r.Phone)
				}
				h.close("td")
				h.el("td", disciplineLabel(r.Discipline))
				h.el("td", r.Message, "class", "text-gray-600")
				h.close("tr")
			}
			h.close("tbody")
			h.close("table")
		})
	})
}

func disciplineLabel(d string) string {
	switch d {
	case "":
		return "-"
	case models.DisciplineUndecided:
		return "Noch unentschlossen"
	default:
		return d
	}
}
