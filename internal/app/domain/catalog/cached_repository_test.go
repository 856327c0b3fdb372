package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

func TestCachedRepository_HitsUpstreamOnce(t *testing.T) {
	upstream := new(MockRepository)
	upstream.On("Trainers", mock.Anything).
		Return([]models.Trainer{{ID: 1, Name: "Sarah Weber"}}, nil).Once()

	repo := NewCachedRepository(upstream, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		got, err := repo.Trainers(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Sarah Weber", got[0].Name)
	}
	upstream.AssertExpectations(t)
	upstream.AssertNumberOfCalls(t, "Trainers", 1)
}

func TestCachedRepository_ErrorsAreNotCached(t *testing.T) {
	upstream := new(MockRepository)
	upstream.On("Courses", mock.Anything).Return(nil, errors.New("db down")).Once()
	upstream.On("Courses", mock.Anything).Return([]models.Course{{ID: 1, Title: "MMA Training"}}, nil).Once()

	repo := NewCachedRepository(upstream, time.Minute, zap.NewNop())

	_, err := repo.Courses(context.Background())
	require.Error(t, err)

	got, err := repo.Courses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MMA Training", got[0].Title)
	upstream.AssertExpectations(t)
}

func TestCachedRepository_ReturnsCopies(t *testing.T) {
	upstream := new(MockRepository)
	upstream.On("SportTypes", mock.Anything).
		Return([]models.SportType{{ID: 1, Name: "Karate", Highlights: []string{"Disziplin"}}}, nil).Once()

	repo := NewCachedRepository(upstream, time.Minute, zap.NewNop())

	first, err := repo.SportTypes(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"
	first[0].Highlights[0] = "mutated"

	second, err := repo.SportTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Karate", second[0].Name)
	assert.Equal(t, []string{"Disziplin"}, second[0].Highlights)
}

func TestCachedRepository_FeaturesAreNotShared(t *testing.T) {
	upstream := new(MockRepository)
	upstream.On("PricePackages", mock.Anything).
		Return([]models.PricePackage{{ID: 1, Title: "Basic", Features: []string{"2x pro Woche"}}}, nil).Once()

	repo := NewCachedRepository(upstream, time.Minute, zap.NewNop())

	first, err := repo.PricePackages(context.Background())
	require.NoError(t, err)
	first[0].Features = append(first[0].Features[:0], "unbegrenzt")

	second, err := repo.PricePackages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2x pro Woche"}, second[0].Features)
}
