package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title     string
	Session   Session
	Nav       Navigation
	ActiveNav string
	Content   templ.Component
	// Modal is rendered into the page's modal slot when set, e.g. the
	// login prompt on a non-HTMX request.
	Modal templ.Component
}

// SiteNav lists the anchors of the landing page.
var SiteNav = Navigation{
	Items: []NavItem{
		{Name: "Kampfsport", URL: "/#kampfsport"},
		{Name: "Trainer", URL: "/#trainer"},
		{Name: "Kurse", URL: "/#kurse"},
		{Name: "Preise", URL: "/#preise"},
		{Name: "Kontakt", URL: "/#kontakt"},
	},
}
