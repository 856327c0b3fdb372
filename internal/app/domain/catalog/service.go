package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// Service assembles catalog collections for the pages.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Repository exposes the underlying collections for the JSON API.
func (s *Service) Repository() Repository {
	return s.repo
}

// Snapshot loads all five collections concurrently.
func (s *Service) Snapshot(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.SportTypes, err = s.repo.SportTypes(gctx)
		return wrapLoad("sport types", err)
	})
	g.Go(func() (err error) {
		snap.Trainers, err = s.repo.Trainers(gctx)
		return wrapLoad("trainers", err)
	})
	g.Go(func() (err error) {
		snap.Courses, err = s.repo.Courses(gctx)
		return wrapLoad("courses", err)
	})
	g.Go(func() (err error) {
		snap.PricePackages, err = s.repo.PricePackages(gctx)
		return wrapLoad("price packages", err)
	})
	g.Go(func() (err error) {
		snap.Testimonials, err = s.repo.Testimonials(gctx)
		return wrapLoad("testimonials", err)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load catalog snapshot", zap.Error(err))
		return models.Snapshot{}, err
	}
	return snap, nil
}

func wrapLoad(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return nil
}

// groupTrainerNames are course trainer labels that intentionally name no
// single trainer.
var groupTrainerNames = map[string]bool{"Alle Trainer": true}

// CheckConsistency reports content issues without rejecting the data:
// courses naming unknown trainers, duplicate ids, and more or fewer than
// one highlighted price package.
func CheckConsistency(snap models.Snapshot) []string {
	var issues []string

	trainers := make(map[string]bool, len(snap.Trainers))
	for _, t := range snap.Trainers {
		trainers[t.Name] = true
	}
	for _, c := range snap.Courses {
		if !trainers[c.TrainerName] && !groupTrainerNames[c.TrainerName] {
			issues = append(issues, fmt.Sprintf("course %d %q names unknown trainer %q", c.ID, c.Title, c.TrainerName))
		}
	}

	issues = append(issues, duplicateIDs("sport type", snap.SportTypes, func(s models.SportType) int { return s.ID })...)
	issues = append(issues, duplicateIDs("trainer", snap.Trainers, func(t models.Trainer) int { return t.ID })...)
	issues = append(issues, duplicateIDs("course", snap.Courses, func(c models.Course) int { return c.ID })...)
	issues = append(issues, duplicateIDs("price package", snap.PricePackages, func(p models.PricePackage) int { return p.ID })...)
	issues = append(issues, duplicateIDs("testimonial", snap.Testimonials, func(t models.Testimonial) int { return t.ID })...)

	highlighted := 0
	for _, p := range snap.PricePackages {
		if p.Highlight {
			highlighted++
		}
	}
	if len(snap.PricePackages) > 0 && highlighted != 1 {
		issues = append(issues, fmt.Sprintf("expected exactly one highlighted price package, found %d", highlighted))
	}
	return issues
}

func duplicateIDs[T any](kind string, items []T, id func(T) int) []string {
	seen := make(map[int]bool, len(items))
	var issues []string
	for _, it := range items {
		k := id(it)
		if seen[k] {
			issues = append(issues, fmt.Sprintf("duplicate %s id %d", kind, k))
		}
		seen[k] = true
	}
	return issues
}

// Verify loads a snapshot and logs every consistency issue as a warning.
func (s *Service) Verify(ctx context.Context) error {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	issues := CheckConsistency(snap)
	for _, issue := range issues {
		s.logger.Warn("Catalog consistency issue", zap.String("issue", issue))
	}
	s.logger.Info("Catalog loaded",
		zap.Int("sport_types", len(snap.SportTypes)),
		zap.Int("trainers", len(snap.Trainers)),
		zap.Int("courses", len(snap.Courses)),
		zap.Int("price_packages", len(snap.PricePackages)),
		zap.Int("testimonials", len(snap.Testimonials)),
		zap.Int("issues", len(issues)))
	return nil
}
