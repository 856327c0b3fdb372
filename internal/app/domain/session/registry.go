package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
	"github.com/youcan-kampfsport/website/internal/app/observability/metrics"
)

// Registry holds one MemoryGate per visitor. Entries expire after ttl without
// use, which drops the visitor back to unauthenticated.
type Registry struct {
	gates    *cache.Cache
	identity models.Identity
	logger   *zap.Logger
}

// NewRegistry creates a registry. cleanupInterval of zero disables the
// background janitor; expired gates are then only skipped on lookup.
func NewRegistry(ttl, cleanupInterval time.Duration, identity models.Identity, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		gates:    cache.New(ttl, cleanupInterval),
		identity: identity,
		logger:   logger,
	}
}

// GateFor returns the visitor's gate, creating it on first use. Each lookup
// extends the entry's lifetime.
func (r *Registry) GateFor(visitorID string) Gate {
	if g, ok := r.gates.Get(visitorID); ok {
		gate := g.(*MemoryGate)
		r.gates.SetDefault(visitorID, gate)
		return gate
	}

	gate := NewMemoryGate(r.identity, r.logger.With(zap.String("visitor_id", visitorID)))
	if err := r.gates.Add(visitorID, gate, cache.DefaultExpiration); err != nil {
		// Another request created it first.
		if existing, ok := r.gates.Get(visitorID); ok {
			return existing.(*MemoryGate)
		}
		r.gates.SetDefault(visitorID, gate)
	}
	r.logger.Debug("Created visitor session gate", zap.String("visitor_id", visitorID))
	metrics.Get().ActiveVisitorGates.Record(context.Background(), int64(r.Count()))
	return gate
}

// Count reports how many visitor gates are held, expired ones included until
// the janitor runs.
func (r *Registry) Count() int {
	return r.gates.ItemCount()
}
