package models

import "slices"

type SportType struct {
	ID          int      `json:"id" yaml:"id" db:"id"`
	Name        string   `json:"name" yaml:"name" db:"name"`
	Description string   `json:"description" yaml:"description" db:"description"`
	ImageURL    string   `json:"image_url" yaml:"image_url" db:"image_url"`
	Highlights  []string `json:"highlights" yaml:"highlights" db:"highlights"`
}

type Trainer struct {
	ID             int      `json:"id" yaml:"id" db:"id"`
	Name           string   `json:"name" yaml:"name" db:"name"`
	Role           string   `json:"role" yaml:"role" db:"role"`
	Description    string   `json:"description" yaml:"description" db:"description"`
	ImageURL       string   `json:"image_url" yaml:"image_url" db:"image_url"`
	Qualifications []string `json:"qualifications" yaml:"qualifications" db:"qualifications"`
}

// Course is one slot of the weekly schedule. TrainerName is display text and
// may name a group such as "Alle Trainer".
type Course struct {
	ID          int    `json:"id" yaml:"id" db:"id"`
	Day         string `json:"day" yaml:"day" db:"day"`
	Time        string `json:"time" yaml:"time" db:"time_slot"`
	Title       string `json:"title" yaml:"title" db:"title"`
	TrainerName string `json:"trainer_name" yaml:"trainer_name" db:"trainer_name"`
}

type PricePackage struct {
	ID           int      `json:"id" yaml:"id" db:"id"`
	Title        string   `json:"title" yaml:"title" db:"title"`
	MonthlyCents int64    `json:"monthly_cents" yaml:"monthly_cents" db:"monthly_cents"`
	Description  string   `json:"description" yaml:"description" db:"description"`
	Features     []string `json:"features" yaml:"features" db:"features"`
	Highlight    bool     `json:"highlight" yaml:"highlight" db:"highlight"`
}

type Testimonial struct {
	ID        int    `json:"id" yaml:"id" db:"id"`
	Author    string `json:"author" yaml:"author" db:"author"`
	Quote     string `json:"quote" yaml:"quote" db:"quote"`
	Rating    int    `json:"rating" yaml:"rating" db:"rating"`
	ClassName string `json:"class_name" yaml:"class_name" db:"class_name"`
}

// Clone copies st including its Highlights.
func (st SportType) Clone() SportType {
	st.Highlights = slices.Clone(st.Highlights)
	return st
}

func (t Trainer) Clone() Trainer {
	t.Qualifications = slices.Clone(t.Qualifications)
	return t
}

func (c Course) Clone() Course { return c }

func (p PricePackage) Clone() PricePackage {
	p.Features = slices.Clone(p.Features)
	return p
}

func (t Testimonial) Clone() Testimonial { return t }

// Snapshot bundles every catalog collection needed to render the site.
type Snapshot struct {
	SportTypes    []SportType    `json:"sport_types"`
	Trainers      []Trainer      `json:"trainers"`
	Courses       []Course       `json:"courses"`
	PricePackages []PricePackage `json:"price_packages"`
	Testimonials  []Testimonial  `json:"testimonials"`
}

// SportNames returns the discipline names in catalog order.
func (s Snapshot) SportNames() []string {
	names := make([]string, 0, len(s.SportTypes))
	for _, st := range s.SportTypes {
		names = append(names, st.Name)
	}
	return names
}
