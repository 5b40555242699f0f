package usedcodes

import (
	"context"
	"errors"
	"sync"
	"time"
)

const sweepInterval = time.Minute

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface
type InMemoryRepo struct {
	used      map[string]time.Time
	mu        sync.Mutex
	nowFunc   func() time.Time
	nextSweep time.Time
}

var _ Repo = (*InMemoryRepo)(nil)

type InMemoryOption func(*InMemoryRepo)

func WithNowFunc(now func() time.Time) InMemoryOption {
	return func(r *InMemoryRepo) {
		r.nowFunc = now
	}
}

// NewInMemoryRepo creates a new in-memory used-code repository
func NewInMemoryRepo(options ...InMemoryOption) *InMemoryRepo {
	r := &InMemoryRepo{
		used:    make(map[string]time.Time),
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *InMemoryRepo) MarkUsed(_ context.Context, id string, expiresAt time.Time) (bool, error) {
	if id == "" {
		return false, errors.New("id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.nextSweep) {
		r.cleanup(now)
		r.nextSweep = now.Add(sweepInterval)
	}

	if exp, exists := r.used[id]; exists && now.Before(exp) {
		return false, nil
	}
	r.used[id] = expiresAt
	return true, nil
}

// Len returns the number of codes currently remembered
func (r *InMemoryRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.used)
}

func (r *InMemoryRepo) Close() error {
	return nil
}

// cleanup removes expired entries. Must be called with mutex locked.
func (r *InMemoryRepo) cleanup(now time.Time) {
	for id, exp := range r.used {
		if !now.Before(exp) {
			delete(r.used, id)
		}
	}
}
