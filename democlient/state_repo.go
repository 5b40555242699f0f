package democlient

import (
	"errors"
	"sync"
	"time"
)

// DefaultStateTTL bounds how long a user has to complete an authorization round trip
const DefaultStateTTL = 10 * time.Minute

var ErrStateNotFound = errors.New("state not found")

// FlowState is what the client remembers between sending the user to the
// authorization server and receiving the callback
type FlowState struct {
	CreatedAt time.Time
}

type StateRepo interface {
	Upsert(state string, flow *FlowState) error
	Get(state string) (*FlowState, error)
	Delete(state string) error
}

// InMemoryStateRepo is a thread-safe in-memory StateRepo. Entries older than
// the TTL are treated as missing and dropped on the next write.
type InMemoryStateRepo struct {
	mu      sync.RWMutex
	states  map[string]*FlowState
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewInMemoryStateRepo(ttl time.Duration, nowFunc func() time.Time) *InMemoryStateRepo {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &InMemoryStateRepo{
		states:  make(map[string]*FlowState),
		ttl:     ttl,
		nowFunc: nowFunc,
	}
}

func (r *InMemoryStateRepo) Upsert(state string, flow *FlowState) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if flow == nil {
		return errors.New("flow cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	for k, v := range r.states {
		if r.expired(v, now) {
			delete(r.states, k)
		}
	}

	copied := *flow
	r.states[state] = &copied
	return nil
}

func (r *InMemoryStateRepo) Get(state string) (*FlowState, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	flow, exists := r.states[state]
	if !exists || r.expired(flow, r.nowFunc()) {
		return nil, ErrStateNotFound
	}

	copied := *flow
	return &copied, nil
}

func (r *InMemoryStateRepo) Delete(state string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, state)
	return nil
}

func (r *InMemoryStateRepo) expired(flow *FlowState, now time.Time) bool {
	return !now.Before(flow.CreatedAt.Add(r.ttl))
}
