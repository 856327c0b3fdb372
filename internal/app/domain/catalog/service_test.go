package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

func TestService_SnapshotFromFixtures(t *testing.T) {
	repo, err := NewFixtureRepository()
	require.NoError(t, err)
	svc := NewService(repo, zap.NewNop())

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.SportTypes, 4)
	assert.Len(t, snap.Trainers, 3)
	assert.Len(t, snap.Courses, 8)
	assert.Len(t, snap.PricePackages, 3)
	assert.Len(t, snap.Testimonials, 3)
	assert.Empty(t, CheckConsistency(snap))
	assert.NoError(t, svc.Verify(context.Background()))
}

func TestService_SnapshotPropagatesErrors(t *testing.T) {
	dbErr := errors.New("boom")
	upstream := new(MockRepository)
	upstream.On("SportTypes", mock.Anything).Return([]models.SportType{}, nil).Maybe()
	upstream.On("Trainers", mock.Anything).Return(nil, dbErr)
	upstream.On("Courses", mock.Anything).Return([]models.Course{}, nil).Maybe()
	upstream.On("PricePackages", mock.Anything).Return([]models.PricePackage{}, nil).Maybe()
	upstream.On("Testimonials", mock.Anything).Return([]models.Testimonial{}, nil).Maybe()

	svc := NewService(upstream, zap.NewNop())
	_, err := svc.Snapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "load trainers")
}

func TestCheckConsistency(t *testing.T) {
	tests := []struct {
		name   string
		snap   models.Snapshot
		issues []string
	}{
		{
			name: "clean",
			snap: models.Snapshot{
				Trainers:      []models.Trainer{{ID: 1, Name: "Alex Müller"}},
				Courses:       []models.Course{{ID: 1, Title: "MMA", TrainerName: "Alex Müller"}, {ID: 2, Title: "Open", TrainerName: "Alle Trainer"}},
				PricePackages: []models.PricePackage{{ID: 1}, {ID: 2, Highlight: true}},
			},
		},
		{
			name: "unknown trainer",
			snap: models.Snapshot{
				Trainers: []models.Trainer{{ID: 1, Name: "Alex Müller"}},
				Courses:  []models.Course{{ID: 3, Title: "Boxen", TrainerName: "Max Mustermann"}},
			},
			issues: []string{`course 3 "Boxen" names unknown trainer "Max Mustermann"`},
		},
		{
			name: "duplicate ids and no highlight",
			snap: models.Snapshot{
				SportTypes:    []models.SportType{{ID: 1}, {ID: 1}},
				PricePackages: []models.PricePackage{{ID: 1}, {ID: 2}},
			},
			issues: []string{
				"duplicate sport type id 1",
				"expected exactly one highlighted price package, found 0",
			},
		},
		{
			name: "two highlights",
			snap: models.Snapshot{
				PricePackages: []models.PricePackage{{ID: 1, Highlight: true}, {ID: 2, Highlight: true}},
			},
			issues: []string{"expected exactly one highlighted price package, found 2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.issues, CheckConsistency(tt.snap))
		})
	}
}
