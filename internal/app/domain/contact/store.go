package contact

import (
	"context"
	"sync"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// Store persists trial requests.
type Store interface {
	Save(ctx context.Context, req models.TrialRequest) error
	// Recent returns up to limit requests, newest first.
	Recent(ctx context.Context, limit int) ([]models.TrialRequest, error)
	Count(ctx context.Context) (int, error)
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the most recent requests in a ring buffer.
type MemoryStore struct {
	mu    sync.RWMutex
	items []models.TrialRequest
	next  int
	full  bool
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryStore{items: make([]models.TrialRequest, capacity)}
}

func (s *MemoryStore) Save(ctx context.Context, req models.TrialRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[s.next] = req
	s.next = (s.next + 1) % len(s.items)
	if s.next == 0 {
		s.full = true
	}
	return nil
}

func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]models.TrialRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.next
	if s.full {
		n = len(s.items)
	}
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.TrialRequest, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.items)) % len(s.items)
		out = append(out, s.items[idx])
	}
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return len(s.items), nil
	}
	return s.next, nil
}
