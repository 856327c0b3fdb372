// Package catalog serves the school's content: disciplines, trainers, the
// weekly schedule, price packages and testimonials. All collections are
// read-only and keep their configured order.
package catalog

import (
	"context"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// Repository is the data-access facade the pages read from.
type Repository interface {
	SportTypes(ctx context.Context) ([]models.SportType, error)
	Trainers(ctx context.Context) ([]models.Trainer, error)
	Courses(ctx context.Context) ([]models.Course, error)
	PricePackages(ctx context.Context) ([]models.PricePackage, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
}

// cloneAll deep-copies items so callers cannot mutate a shared collection.
func cloneAll[T interface{ Clone() T }](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
