package pages

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err, "failed to read rendered HTML")
	return doc
}

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		SportTypes: []models.SportType{
			{ID: 1, Name: "Kickboxen", Description: "Schlag- und Tritttechniken", Highlights: []string{"Fitness", "Koordination"}},
			{ID: 2, Name: "Karate", Description: "Japanische Kampfkunst", Highlights: []string{"Disziplin"}},
		},
		Trainers: []models.Trainer{
			{ID: 1, Name: "Michael Schmidt", Role: "Headcoach & Gründer", Qualifications: []string{"Karate 3. Dan"}},
		},
		Courses: []models.Course{
			{ID: 1, Day: "Montag", Time: "18:00 - 19:30", Title: "Kickboxen Anfänger", TrainerName: "Michael Schmidt"},
			{ID: 2, Day: "Samstag", Time: "10:00 - 11:30", Title: "Open Training", TrainerName: "Alle Trainer"},
		},
		PricePackages: []models.PricePackage{
			{ID: 1, Title: "Schnuppermonat", MonthlyCents: 4900, Features: []string{"Alle Kurse"}},
			{ID: 2, Title: "Standard Mitgliedschaft", MonthlyCents: 7900, Highlight: true},
			{ID: 3, Title: "Premium Mitgliedschaft", MonthlyCents: 11900},
		},
		Testimonials: []models.Testimonial{
			{ID: 1, Author: "Thomas K.", Quote: "Top Trainer", Rating: 5, ClassName: "Kickboxen"},
		},
	}
}

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{4900, "49€"},
		{11900, "119€"},
		{4950, "49,50€"},
		{120000, "1.200€"},
		{0, "0€"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEuro(tt.cents))
		})
	}
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★", Stars(3))
	assert.Equal(t, "★★★★★", Stars(9))
	assert.Equal(t, "", Stars(-1))
}

func TestHomePage_Sections(t *testing.T) {
	doc := render(t, HomePage(testSnapshot()))

	for _, id := range []string{"kampfsport", "trainer", "kurse", "preise", "testimonials", "kontakt"} {
		assert.Equal(t, 1, doc.Find("section#"+id).Length(), "section %s", id)
	}
	assert.Contains(t, doc.Find("h1").Text(), "ENTDECKE DEINE")
	assert.Equal(t, 2, doc.Find(".sport-card").Length())
	assert.Equal(t, 1, doc.Find(".trainer-card").Length())
	assert.Equal(t, 2, doc.Find(".course-row").Length())
	assert.Equal(t, 1, doc.Find(".testimonial").Length())
	assert.Contains(t, doc.Find(".course-row").Last().Text(), "Trainer: Alle Trainer")
	assert.Equal(t, "2", doc.Find(".stat").Last().Children().First().Text())
}

func TestHomePage_PriceCards(t *testing.T) {
	doc := render(t, HomePage(testSnapshot()))

	cards := doc.Find(".price-card")
	require.Equal(t, 3, cards.Length())

	assert.Equal(t, 1, doc.Find(".badge").Length())
	assert.Equal(t, "BELIEBT", cards.Eq(1).Find(".badge").Text())
	assert.Equal(t, 0, cards.Eq(0).Find(".badge").Length())

	assert.Equal(t, "Jetzt starten", cards.Eq(0).Find("a").Last().Text())
	assert.Equal(t, "Mitglied werden", cards.Eq(1).Find("a").Last().Text())
	assert.Equal(t, "Mitglied werden", cards.Eq(2).Find("a").Last().Text())
	assert.Contains(t, cards.Eq(0).Text(), "49€/Monat")
}

func TestHomePage_ContactFormOptions(t *testing.T) {
	doc := render(t, HomePage(testSnapshot()))

	form := doc.Find("form#kontakt-form")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "/kontakt", form.AttrOr("hx-post", ""))

	var values []string
	form.Find("select[name=discipline] option").Each(func(_ int, s *goquery.Selection) {
		values = append(values, s.AttrOr("value", ""))
	})
	assert.Equal(t, []string{"", "Kickboxen", "Karate", models.DisciplineUndecided}, values)
}

func TestHomePage_EscapesContent(t *testing.T) {
	snap := testSnapshot()
	snap.Testimonials[0].Quote = `<script>alert("x")</script>`

	var sb strings.Builder
	require.NoError(t, HomePage(snap).Render(context.Background(), &sb))
	assert.NotContains(t, sb.String(), "<script>alert")
	assert.Contains(t, sb.String(), "&lt;script&gt;")
}

func TestHomePage_SanitizesImageURLs(t *testing.T) {
	snap := testSnapshot()
	snap.SportTypes[0].ImageURL = "javascript:alert(1)"
	snap.SportTypes[1].ImageURL = "https://images.example.com/karate.jpg"
	snap.Trainers[0].ImageURL = "JavaScript:alert(document.cookie)"

	doc := render(t, HomePage(snap))

	srcs := doc.Find("img").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("src", "")
	})
	assert.Contains(t, srcs, string(templ.FailedSanitizationURL))
	assert.Contains(t, srcs, "https://images.example.com/karate.jpg")
	for _, src := range srcs {
		assert.NotContains(t, strings.ToLower(src), "javascript:")
	}
}

func TestAdminPage_SanitizesImageURLs(t *testing.T) {
	snap := testSnapshot()
	snap.Trainers[0].ImageURL = "javascript:alert(1)"

	doc := render(t, TrainersTab(snap.Trainers))

	img := doc.Find("img").First()
	require.Equal(t, 1, img.Length())
	assert.Equal(t, string(templ.FailedSanitizationURL), img.AttrOr("src", ""))
}

func TestAdminAccess(t *testing.T) {
	t.Run("anonymous visitor gets the login trigger", func(t *testing.T) {
		doc := render(t, AdminAccess(models.Session{}))
		btn := doc.Find("button#admin-access")
		require.Equal(t, 1, btn.Length())
		assert.Equal(t, "/admin/login", btn.AttrOr("hx-get", ""))
		assert.Equal(t, "#modal", btn.AttrOr("hx-target", ""))
	})

	t.Run("admin gets a link to the panel", func(t *testing.T) {
		identity := models.PlaceholderIdentity
		doc := render(t, AdminAccess(models.Session{Authenticated: true, Identity: &identity}))
		link := doc.Find("a#admin-access")
		require.Equal(t, 1, link.Length())
		assert.Equal(t, "/admin", link.AttrOr("href", ""))
	})
}

func TestLayoutPage(t *testing.T) {
	doc := render(t, LayoutPage(models.LayoutTempl{
		Title:   "YOU Can",
		Nav:     models.SiteNav,
		Content: HomePage(testSnapshot()),
		Modal:   LoginPrompt(),
	}))

	assert.Equal(t, "YOU Can", doc.Find("title").Text())
	assert.Equal(t, "de", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, 5, doc.Find("nav#navbar .hidden a").Length()-1, "five anchors plus the trial button")
	assert.Equal(t, 1, doc.Find("#modal #login-prompt").Length())
	assert.Equal(t, 1, doc.Find("footer button#admin-access").Length())
}

func TestLoginPrompt(t *testing.T) {
	doc := render(t, LoginPrompt())

	form := doc.Find("form")
	assert.Equal(t, "/admin/login", form.AttrOr("action", ""))
	assert.Equal(t, "post", form.AttrOr("method", ""))
	assert.Equal(t, "Demo Login", form.Find("button").Text())
	assert.Equal(t, "Abbrechen", doc.Find("a").Text())
	assert.Equal(t, 0, doc.Find("input[type=password]").Length())
	assert.Contains(t, doc.Text(), "Temporäres Demo-System für Entwicklung")
}

func TestAdminPage(t *testing.T) {
	identity := models.PlaceholderIdentity
	s := models.Session{Authenticated: true, Identity: &identity}
	doc := render(t, AdminPage(s, "overview", OverviewTab(testSnapshot(), 4)))

	assert.Equal(t, "Willkommen, Admin User", doc.Find("#admin-welcome").Text())
	assert.Equal(t, "/admin/logout", doc.Find("header form").AttrOr("action", ""))
	assert.Equal(t, 1, doc.Find("#demo-notice").Length())
	assert.Equal(t, len(AdminTabs), doc.Find("[role=tab]").Length())
	assert.Equal(t, "true", doc.Find(`[data-tab="overview"]`).AttrOr("aria-selected", ""))
	assert.Equal(t, "false", doc.Find(`[data-tab="kurse"]`).AttrOr("aria-selected", ""))

	assert.Equal(t, "2", doc.Find(`[data-stat="Kampfsportarten"] div`).Text())
	assert.Equal(t, "3", doc.Find(`[data-stat="Pakete"] div`).Text())
	assert.Equal(t, "4", doc.Find(`[data-stat="Anfragen"] div`).Text())
	assert.Contains(t, doc.Text(), "Nächste Schritte")
}

func TestAdminTabs(t *testing.T) {
	snap := testSnapshot()
	tests := []struct {
		name  string
		c     templ.Component
		items int
		text  string
	}{
		{"sportarten", SportTypesTab(snap.SportTypes), 2, "Kampfsportarten verwalten"},
		{"trainer", TrainersTab(snap.Trainers), 1, "Headcoach & Gründer"},
		{"kurse", CoursesTab(snap.Courses), 2, "(Montag, 18:00 - 19:30)"},
		{"preise", PricesTab(snap.PricePackages), 3, "119€"},
		{"bewertungen", TestimonialsTab(snap.Testimonials), 1, "★★★★★"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, tt.c)
			assert.Equal(t, tt.items, doc.Find(".admin-item").Length())
			assert.Contains(t, doc.Text(), tt.text)
		})
	}
}

func TestRequestsTab(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		doc := render(t, RequestsTab(nil))
		assert.Equal(t, 1, doc.Find(".empty").Length())
	})

	t.Run("lists requests", func(t *testing.T) {
		id := uuid.New()
		doc := render(t, RequestsTab([]models.TrialRequest{{
			ID:         id,
			FirstName:  "Lisa",
			LastName:   "Meyer",
			Email:      "lisa@example.de",
			Discipline: models.DisciplineUndecided,
			CreatedAt:  time.Date(2024, 5, 1, 16, 30, 0, 0, time.UTC),
		}}))
		row := doc.Find(`tr[data-id="` + id.String() + `"]`)
		require.Equal(t, 1, row.Length())
		assert.Contains(t, row.Text(), "Lisa Meyer")
		assert.Contains(t, row.Text(), "01.05.2024 18:30")
		assert.Contains(t, row.Text(), "Noch unentschlossen")
	})
}

func TestLookupAdminTab(t *testing.T) {
	tab, ok := LookupAdminTab("anfragen")
	assert.True(t, ok)
	assert.Equal(t, "Anfragen", tab.Label)

	_, ok = LookupAdminTab("settings")
	assert.False(t, ok)
}

func TestBanner(t *testing.T) {
	doc := render(t, Banner(BannerError, "Bitte prüfe deine Angaben", "", []models.FieldError{
		{Field: "email", Message: "Bitte gib eine gültige E-Mail-Adresse an."},
	}))

	b := doc.Find(".banner")
	assert.Equal(t, "error", b.AttrOr("data-kind", ""))
	assert.Equal(t, "alert", b.AttrOr("role", ""))
	assert.Equal(t, 1, b.Find(`li[data-field="email"]`).Length())
}
