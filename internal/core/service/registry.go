package service

import (
	"container/list"
	"context"
	"sync"
)

// Factory builds the AuthService for a browsing context on first use.
type Factory func(ctx context.Context, contextID string) *AuthService

const defaultMaxContexts = 10000

// Registry hands out one AuthService per browsing context, so each context
// owns at most one session. The registry is bounded: once maxContexts is
// reached the least recently used context is evicted. Context IDs arrive from
// untrusted request headers, so the map must not grow with whatever callers
// send. Eviction loses nothing durable: a context seen again gets a fresh
// service that rehydrates from the session store, the same path a process
// restart takes.
type Registry struct {
	mu      sync.Mutex
	factory Factory
	max     int
	order   *list.List // front is most recently used
	entries map[string]*list.Element
}

type registryEntry struct {
	contextID string
	svc       *AuthService
}

// NewRegistry creates a Registry holding at most maxContexts live services.
// If maxContexts <= 0, defaultMaxContexts is used.
func NewRegistry(factory Factory, maxContexts int) *Registry {
	if maxContexts <= 0 {
		maxContexts = defaultMaxContexts
	}
	return &Registry{
		factory: factory,
		max:     maxContexts,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

// Get returns the service owning contextID's session, creating it on demand
// and evicting the least recently used context when the bound is exceeded.
func (r *Registry) Get(ctx context.Context, contextID string) *AuthService {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.entries[contextID]; ok {
		r.order.MoveToFront(el)
		return el.Value.(*registryEntry).svc
	}

	svc := r.factory(ctx, contextID)
	r.entries[contextID] = r.order.PushFront(&registryEntry{contextID: contextID, svc: svc})

	for r.order.Len() > r.max {
		oldest := r.order.Back()
		r.order.Remove(oldest)
		delete(r.entries, oldest.Value.(*registryEntry).contextID)
	}
	return svc
}

// Len reports the number of live browsing contexts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
