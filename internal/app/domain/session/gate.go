// Package session owns the admin session placeholder: the gate that decides
// whether an admin is considered logged in, and the resolvers that pick a
// gate for an incoming request.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// Ensure implementation satisfies the interface
var _ Gate = (*MemoryGate)(nil)

// Gate is the contract views consume. Every call takes a context and returns
// an error so a network-backed implementation can replace MemoryGate without
// changes at the call sites.
type Gate interface {
	// Login authenticates unconditionally and returns the new session.
	Login(ctx context.Context) (models.Session, error)
	// Logout clears the session.
	Logout(ctx context.Context) error
	// CurrentSession returns models.ErrNotAuthenticated when nobody is
	// logged in.
	CurrentSession(ctx context.Context) (models.Session, error)
}

// MemoryGate keeps a single session in process memory. Nothing is persisted;
// a new MemoryGate always starts unauthenticated.
type MemoryGate struct {
	mu       sync.RWMutex
	session  models.Session
	identity models.Identity
	logger   *zap.Logger
}

// NewMemoryGate returns an unauthenticated gate whose Login assigns identity.
func NewMemoryGate(identity models.Identity, logger *zap.Logger) *MemoryGate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryGate{identity: identity, logger: logger}
}

// NewPlaceholderGate returns a gate handing out models.PlaceholderIdentity.
func NewPlaceholderGate(logger *zap.Logger) *MemoryGate {
	return NewMemoryGate(models.PlaceholderIdentity, logger)
}

func (g *MemoryGate) Login(ctx context.Context) (models.Session, error) {
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}

	g.mu.Lock()
	identity := g.identity
	wasAuthenticated := g.session.Authenticated
	g.session = models.Session{Authenticated: true, Identity: &identity}
	current := g.snapshotLocked()
	g.mu.Unlock()

	g.logger.Info("Admin session opened",
		zap.String("user_id", identity.ID),
		zap.String("role", identity.Role),
		zap.Bool("already_authenticated", wasAuthenticated))
	return current, nil
}

func (g *MemoryGate) Logout(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	g.session = models.Session{}
	g.mu.Unlock()

	g.logger.Info("Admin session closed")
	return nil
}

func (g *MemoryGate) CurrentSession(ctx context.Context) (models.Session, error) {
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.session.Authenticated {
		return models.Session{}, models.ErrNotAuthenticated
	}
	return g.snapshotLocked(), nil
}

// snapshotLocked copies the session so callers never alias gate state.
func (g *MemoryGate) snapshotLocked() models.Session {
	if g.session.Identity == nil {
		return models.Session{Authenticated: g.session.Authenticated}
	}
	identity := *g.session.Identity
	return models.Session{Authenticated: g.session.Authenticated, Identity: &identity}
}
