package queue

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mitchfriedman/siphon/internal/store"
)

// Registry owns the set of named queues: creation, lookup, and routing of
// enqueue/dequeue calls. It is the only place an unknown queue name is
// detected; a Queue itself has no notion of absence.
//
// Construct one at startup and hand it to whatever serves callers. Entries
// are only ever added or replaced, never removed.
type Registry struct {
	store store.Store

	mu     sync.Mutex
	queues map[string]*Queue
}

// NewRegistry returns an empty registry whose queues will use st.
func NewRegistry(st store.Store) *Registry {
	return &Registry{
		store:  st,
		queues: make(map[string]*Queue),
	}
}

// CreateQueue registers a fresh Queue under name, replacing any existing
// entry. Replacement strands nothing: the new Queue derives the same list
// key from the name and picks up pending jobs where the old one left off.
func (r *Registry) CreateQueue(name string) *Queue {
	q := New(name, r.store)
	r.mu.Lock()
	r.queues[name] = q
	r.mu.Unlock()
	return q
}

// Get returns the queue registered under name.
func (r *Registry) Get(name string) (*Queue, bool) {
	r.mu.Lock()
	q, ok := r.queues[name]
	r.mu.Unlock()
	return q, ok
}

// Names returns the registered queue names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.queues))
	for name := range r.queues {
		names = append(names, name)
	}
	r.mu.Unlock()
	sort.Strings(names)
	return names
}

// Enqueue routes the job to the named queue. Unknown names fail with
// ErrQueueNotFound; everything else is the queue's own result, unchanged.
func (r *Registry) Enqueue(ctx context.Context, queueName, key string, fields map[string]string) error {
	q, ok := r.Get(queueName)
	if !ok {
		return fmt.Errorf("queue %q: %w", queueName, ErrQueueNotFound)
	}
	return q.Enqueue(ctx, key, fields)
}

// Dequeue pops the oldest job from the named queue. Unknown names fail with
// ErrQueueNotFound; everything else, ErrEmpty included, is the queue's own
// result, unchanged.
func (r *Registry) Dequeue(ctx context.Context, queueName string) (Job, error) {
	q, ok := r.Get(queueName)
	if !ok {
		return Job{}, fmt.Errorf("queue %q: %w", queueName, ErrQueueNotFound)
	}
	return q.Dequeue(ctx)
}
