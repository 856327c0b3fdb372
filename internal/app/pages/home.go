package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// HomePage is the landing page body.
func HomePage(snap models.Snapshot) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.component(ctx, hero(len(snap.SportTypes)))
		h.component(ctx, sportsSection(snap.SportTypes))
		h.component(ctx, trainersSection(snap.Trainers))
		h.component(ctx, scheduleSection(snap.Courses))
		h.component(ctx, pricesSection(snap.PricePackages))
		h.component(ctx, testimonialsSection(snap.Testimonials))
		h.component(ctx, contactSection(snap.SportNames()))
	})
}

func sectionHeading(h *html, lead, accent, tail, subtitle string, dark bool) {
	h.open("div", "class", "text-center mb-16")
	h.open("h2", "class", "text-4xl md:text-5xl font-black mb-4")
	h.text(lead + " ")
	h.el("span", accent, "class", "text-red-500")
	if tail != "" {
		h.text(" " + tail)
	}
	h.close("h2")
	sub := "text-xl text-gray-600 max-w-3xl mx-auto"
	if dark {
		sub = cls(sub, "text-gray-300")
	}
	h.el("p", subtitle, "class", sub)
	h.close("div")
}

func hero(disciplines int) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "id", "hero", "class", "relative min-h-screen flex items-center justify-center bg-black text-white overflow-hidden")
		h.open("div", "class", "relative z-10 text-center px-4")
		h.open("h1", "class", "text-5xl md:text-7xl font-black mb-6 leading-tight")
		h.raw(`ENTDECKE DEINE<br><span class="text-red-500">STÄRKE</span>`)
		h.close("h1")
		h.el("p", "Professionelles Kampfsport-Training in Lüdenscheid", "class", "text-xl md:text-2xl text-gray-300 mb-10")

		h.open("div", "class", "flex flex-col sm:flex-row gap-4 justify-center mb-16")
		h.el("a", "Kostenloses Probetraining", "href", "#kontakt",
			"class", "bg-red-600 hover:bg-red-700 text-white px-8 py-4 text-lg font-semibold rounded-md")
		h.el("a", "Mehr erfahren", "href", "#kampfsport",
			"class", "border border-white text-white hover:bg-white hover:text-black px-8 py-4 text-lg rounded-md")
		h.close("div")

		h.open("div", "class", "grid grid-cols-3 gap-8 max-w-2xl mx-auto")
		for _, s := range []struct{ value, label string }{
			{"15+", "Jahre Erfahrung"},
			{"200+", "Aktive Mitglieder"},
			{strconv.Itoa(disciplines), "Kampfsportarten"},
		} {
			h.open("div", "class", "text-center stat")
			h.el("div", s.value, "class", "text-3xl font-bold text-red-500")
			h.el("div", s.label, "class", "text-sm font-medium")
			h.close("div")
		}
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

func sportsSection(sports []models.SportType) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "id", "kampfsport", "class", "py-20 bg-gray-50")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8")
		sectionHeading(h, "UNSERE", "KAMPFSPORTARTEN", "",
			"Vom traditionellen Karate bis zum modernen MMA - finde deine perfekte Disziplin", false)

		h.open("div", "class", "grid md:grid-cols-2 lg:grid-cols-4 gap-8")
		for _, s := range sports {
			h.open("article", "class", "sport-card bg-white rounded-xl shadow-lg overflow-hidden group")
			h.open("img", "src", s.ImageURL, "alt", s.Name, "loading", "lazy",
				"class", "w-full h-48 object-cover group-hover:scale-110 transition-transform duration-500")
			h.open("div", "class", "p-6")
			h.el("h3", s.Name, "class", "text-2xl font-bold mb-3")
			h.el("p", s.Description, "class", "text-gray-600 mb-4")
			h.open("div", "class", "flex flex-wrap gap-2")
			for _, tag := range s.Highlights {
				h.el("span", tag, "class", "px-3 py-1 text-xs font-medium rounded-full bg-red-100 text-red-700")
			}
			h.close("div")
			h.close("div")
			h.close("article")
		}
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

func trainersSection(trainers []models.Trainer) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "id", "trainer", "class", "py-20 bg-white")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8")
		sectionHeading(h, "UNSERE", "TRAINER", "", "Erfahrene Profis, die dich zu deinen Zielen begleiten", false)

		h.open("div", "class", "grid md:grid-cols-3 gap-8")
		for _, t := range trainers {
			h.open("article", "class", "trainer-card bg-gray-50 rounded-xl overflow-hidden shadow-lg")
			h.open("img", "src", t.ImageURL, "alt", t.Name, "loading", "lazy", "class", "w-full h-64 object-cover")
			h.open("div", "class", "p-6")
			h.el("h3", t.Name, "class", "text-2xl font-bold")
			h.el("p", t.Role, "class", "text-red-600 font-semibold mb-3")
			h.el("p", t.Description, "class", "text-gray-600 mb-4")
			h.el("h4", "Qualifikationen:", "class", "font-semibold text-gray-900")
			h.open("ul", "class", "mt-2 space-y-1")
			for _, q := range t.Qualifications {
				h.el("li", q, "class", "text-sm text-gray-600")
			}
			h.close("ul")
			h.close("div")
			h.close("article")
		}
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

func scheduleSection(courses []models.Course) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "id", "kurse", "class", "py-20 bg-black text-white")
		h.open("div", "class", "max-w-5xl mx-auto px-4 sm:px-6 lg:px-8")
		sectionHeading(h, "UNSER", "STUNDENPLAN", "", "Flexible Trainingszeiten für jeden Terminkalender", true)

		h.open("div", "class", "space-y-4")
		for _, c := range courses {
			h.open("div", "class", "course-row flex flex-col md:flex-row md:items-center justify-between p-6 bg-gray-900 rounded-lg hover:bg-red-600 transition-colors group")
			h.open("div", "class", "flex flex-col md:flex-row md:items-center gap-2 md:gap-8")
			h.el("span", c.Day, "class", "text-red-500 font-bold w-28 group-hover:text-white")
			h.el("span", c.Time, "class", "text-gray-300 w-32 group-hover:text-white")
			h.open("div")
			h.el("h3", c.Title, "class", "text-lg font-semibold")
			h.el("p", "Trainer: "+c.TrainerName, "class", "text-gray-400 text-sm group-hover:text-red-100")
			h.close("div")
			h.close("div")
			h.el("a", "Anmelden", "href", "#kontakt",
				"class", "mt-4 md:mt-0 border border-gray-600 px-4 py-2 rounded-md text-sm group-hover:bg-white group-hover:text-red-600 group-hover:border-white")
			h.close("div")
		}
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

func pricesSection(packages []models.PricePackage) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "id", "preise", "class", "py-20 bg-gray-50")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8")
		sectionHeading(h, "UNSERE", "PREISE", "", "Faire Preise für professionelles Training", false)

		h.open("div", "class", "grid md:grid-cols-3 gap-8")
		for i, p := range packages {
			h.component(ctx, PriceCard(p, i == 0))
		}
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

// PriceCard renders one package. The first package invites to start, the
// others to join.
func PriceCard(p models.PricePackage, first bool) templ.Component {
	return component(func(ctx context.Context, h *html) {
		card := "price-card relative rounded-2xl p-8 bg-white shadow-lg"
		amount := "text-4xl font-black mb-2 text-red-600"
		button := "block w-full text-center mt-8 py-3 rounded-md font-semibold bg-red-600 hover:bg-red-700 text-white"
		if p.Highlight {
			card = cls(card, "bg-red-600 text-white scale-105 shadow-2xl")
			amount = cls(amount, "text-white")
			button = cls(button, "bg-white hover:bg-gray-100 text-red-600")
		}

		h.open("div", "class", card)
		if p.Highlight {
			h.open("div", "class", "absolute -top-4 left-1/2 -translate-x-1/2")
			h.el("span", "BELIEBT", "class", "badge bg-orange-500 text-white px-4 py-2 rounded-full text-sm font-bold")
			h.close("div")
		}
		h.el("h3", p.Title, "class", "text-2xl font-bold mb-2")
		h.open("div", "class", amount)
		h.text(FormatEuro(p.MonthlyCents))
		h.el("span", "/Monat", "class", "text-lg font-normal")
		h.close("div")
		h.el("p", p.Description, "class", "mb-6 opacity-80")
		h.open("ul", "class", "space-y-3")
		for _, f := range p.Features {
			h.el("li", "✓ "+f)
		}
		h.close("ul")
		label := "Mitglied werden"
		if first {
			label = "Jetzt starten"
		}
		h.el("a", label, "href", "#kontakt", "class", button)
		h.close("div")
	})
}

func testimonialsSection(testimonials []models.Testimonial) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "id", "testimonials", "class", "py-20 bg-white")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8")
		sectionHeading(h, "WAS UNSERE", "MITGLIEDER", "SAGEN", "Echte Erfahrungen von echten Menschen", false)

		h.open("div", "class", "grid md:grid-cols-3 gap-8")
		for _, t := range testimonials {
			h.open("blockquote", "class", "testimonial bg-gray-50 p-8 rounded-xl shadow")
			h.el("div", Stars(t.Rating), "class", "text-yellow-400 text-xl mb-4", "aria-label", strconv.Itoa(t.Rating)+" von 5 Sternen")
			h.el("p", "\""+t.Quote+"\"", "class", "text-gray-700 italic mb-6")
			h.el("cite", t.Author, "class", "not-italic font-bold block")
			h.el("span", t.ClassName, "class", "text-red-600 text-sm")
			h.close("blockquote")
		}
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

func contactSection(sportNames []string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "id", "kontakt", "class", "py-20 bg-black text-white")
		h.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8")
		sectionHeading(h, "STARTE DEINE", "KAMPFSPORT-REISE", "", "Kontaktiere uns für ein kostenloses Probetraining", true)

		h.open("div", "class", "grid lg:grid-cols-2 gap-12")

		h.open("div", "class", "space-y-8")
		contactBlock(h, "YOU Can Kampfsportschule", "Wilhelmstraße 123", "58511 Lüdenscheid")
		contactBlock(h, "Telefon", "+49 2351 123456")
		contactBlock(h, "E-Mail", "info@youcan-kampfsport.de")
		contactBlock(h, "Öffnungszeiten", "Mo-Fr: 16:00 - 22:00", "Sa: 10:00 - 16:00", "So: Ruhetag")
		h.close("div")

		h.open("div", "class", "bg-gray-900 p-8 rounded-2xl")
		h.el("h3", "Kostenloses Probetraining vereinbaren", "class", "text-2xl font-bold mb-6")
		h.component(ctx, ContactForm(sportNames))
		h.close("div")

		h.close("div")
		h.close("div")
		h.close("section")
	})
}

func contactBlock(h *html, title string, lines ...string) {
	h.open("div")
	h.el("h3", title, "class", "text-xl font-semibold")
	h.open("p", "class", "text-gray-300")
	for i, l := range lines {
		if i > 0 {
			h.raw("<br>")
		}
		h.text(l)
	}
	h.close("p")
	h.close("div")
}

const inputClass = "w-full p-4 rounded-lg bg-gray-800 border border-gray-700 text-white placeholder-gray-400 focus:border-red-500 focus:outline-none"

// ContactForm posts a trial request and shows the answer banner above it.
func ContactForm(sportNames []string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("form", "id", "kontakt-form", "method", "post", "action", "/kontakt",
			"hx-post", "/kontakt", "hx-target", "#kontakt-result", "hx-swap", "innerHTML",
			"class", "space-y-4")
		h.open("div", "id", "kontakt-result")
		h.close("div")
		h.open("div", "class", "grid md:grid-cols-2 gap-4")
		h.open("input", "type", "text", "name", "first_name", "placeholder", "Vorname", "required", "required", "class", inputClass)
		h.open("input", "type", "text", "name", "last_name", "placeholder", "Nachname", "required", "required", "class", inputClass)
		h.close("div")
		h.open("input", "type", "email", "name", "email", "placeholder", "E-Mail Adresse", "required", "required", "class", inputClass)
		h.open("input", "type", "tel", "name", "phone", "placeholder", "Telefonnummer", "class", inputClass)

		h.open("select", "name", "discipline", "class", cls(inputClass, "placeholder-transparent"))
		h.el("option", "Welcher Kampfsport interessiert dich?", "value", "")
		for _, name := range sportNames {
			h.el("option", name, "value", name)
		}
		h.el("option", "Ich bin noch unentschlossen", "value", models.DisciplineUndecided)
		h.close("select")

		h.open("textarea", "name", "message", "placeholder", "Nachricht (optional)", "rows", "4", "maxlength", "2000", "class", cls(inputClass, "resize-none"))
		h.close("textarea")
		h.el("button", "Probetraining anfragen", "type", "submit",
			"class", "w-full bg-red-600 hover:bg-red-700 text-white font-semibold py-4 rounded-lg text-lg")
		h.close("form")
	})
}
