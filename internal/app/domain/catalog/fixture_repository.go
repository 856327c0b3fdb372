package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

var _ Repository = (*FixtureRepository)(nil)

// FixtureRepository serves the catalog from a YAML document.
type FixtureRepository struct {
	data models.Snapshot
}

type fixtureDocument struct {
	SportTypes    []models.SportType    `yaml:"sport_types"`
	Trainers      []models.Trainer      `yaml:"trainers"`
	Courses       []models.Course       `yaml:"courses"`
	PricePackages []models.PricePackage `yaml:"price_packages"`
	Testimonials  []models.Testimonial  `yaml:"testimonials"`
}

// NewFixtureRepository loads the fixtures compiled into the binary.
func NewFixtureRepository() (*FixtureRepository, error) {
	return ParseFixtures(defaultFixtures)
}

// ParseFixtures builds a repository from a YAML document.
func ParseFixtures(raw []byte) (*FixtureRepository, error) {
	var doc fixtureDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog fixtures: %w", err)
	}
	for _, t := range doc.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			return nil, fmt.Errorf("testimonial %d: rating %d out of range 1-5: %w", t.ID, t.Rating, models.ErrValidation)
		}
	}
	return &FixtureRepository{data: models.Snapshot{
		SportTypes:    doc.SportTypes,
		Trainers:      doc.Trainers,
		Courses:       doc.Courses,
		PricePackages: doc.PricePackages,
		Testimonials:  doc.Testimonials,
	}}, nil
}

func (r *FixtureRepository) SportTypes(ctx context.Context) ([]models.SportType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneAll(r.data.SportTypes), nil
}

func (r *FixtureRepository) Trainers(ctx context.Context) ([]models.Trainer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneAll(r.data.Trainers), nil
}

func (r *FixtureRepository) Courses(ctx context.Context) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneAll(r.data.Courses), nil
}

func (r *FixtureRepository) PricePackages(ctx context.Context) ([]models.PricePackage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneAll(r.data.PricePackages), nil
}

func (r *FixtureRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneAll(r.data.Testimonials), nil
}
