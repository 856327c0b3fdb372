package catalog

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

var _ Repository = (*CachedRepository)(nil)

const (
	keySportTypes    = "sport_types"
	keyTrainers      = "trainers"
	keyCourses       = "courses"
	keyPricePackages = "price_packages"
	keyTestimonials  = "testimonials"
)

// CachedRepository keeps each collection in memory for a TTL so a database
// backed catalog is not queried on every page view.
type CachedRepository struct {
	next   Repository
	cache  *cache.Cache
	logger *zap.Logger
}

func NewCachedRepository(next Repository, ttl time.Duration, logger *zap.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func (r *CachedRepository) SportTypes(ctx context.Context) ([]models.SportType, error) {
	return cached(ctx, r, keySportTypes, r.next.SportTypes)
}

func (r *CachedRepository) Trainers(ctx context.Context) ([]models.Trainer, error) {
	return cached(ctx, r, keyTrainers, r.next.Trainers)
}

func (r *CachedRepository) Courses(ctx context.Context) ([]models.Course, error) {
	return cached(ctx, r, keyCourses, r.next.Courses)
}

func (r *CachedRepository) PricePackages(ctx context.Context) ([]models.PricePackage, error) {
	return cached(ctx, r, keyPricePackages, r.next.PricePackages)
}

func (r *CachedRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return cached(ctx, r, keyTestimonials, r.next.Testimonials)
}

func cached[T interface{ Clone() T }](ctx context.Context, r *CachedRepository, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if v, ok := r.cache.Get(key); ok {
		if items, ok := v.([]T); ok {
			return cloneAll(items), nil
		}
	}
	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(key, items)
	r.logger.Debug("Catalog cache filled", zap.String("key", key), zap.Int("items", len(items)))
	return cloneAll(items), nil
}
