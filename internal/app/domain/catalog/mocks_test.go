package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SportTypes(ctx context.Context) ([]models.SportType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SportType), args.Error(1)
}

func (m *MockRepository) Trainers(ctx context.Context) ([]models.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trainer), args.Error(1)
}

func (m *MockRepository) Courses(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockRepository) PricePackages(ctx context.Context) ([]models.PricePackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PricePackage), args.Error(1)
}

func (m *MockRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}
