package queue

import (
	"context"

	"github.com/mitchfriedman/siphon/internal/store"
)

// Job is one unit of work: a caller-supplied key plus the field map that
// describes the work. Field semantics belong to producers and consumers;
// the queue never inspects them.
type Job struct {
	Key    string
	Fields map[string]string
}

// Queue owns FIFO ordering for one named queue. It holds no job state of
// its own: everything durable lives in the job store under keys derived
// from the queue's name, so a Queue value is cheap and safe to replace.
type Queue struct {
	name    string
	listKey string
	store   store.Store
}

// New binds a queue named name to the given store.
func New(name string, st store.Store) *Queue {
	return &Queue{
		name:    name,
		listKey: ListKey(name),
		store:   st,
	}
}

// Name returns the queue's name.
func (q *Queue) Name() string {
	return q.name
}

// Enqueue appends key to the queue's tail and records fields under the key,
// as one atomic store write. Older jobs always leave before newer ones.
func (q *Queue) Enqueue(ctx context.Context, key string, fields map[string]string) error {
	return q.store.Enqueue(ctx, q.listKey, key, fields)
}

// Dequeue pops the oldest pending job key and resolves it to a Job.
//
// An empty queue returns ErrEmpty. A popped key with no field map returns
// the bare-key Job together with a *PartialJobError so the caller still
// learns which key was consumed. On success the field map is deleted from
// the store: job data only lives while the job is pending.
func (q *Queue) Dequeue(ctx context.Context) (Job, error) {
	key, ok, err := q.store.ListPopHead(ctx, q.listKey)
	if err != nil {
		return Job{}, err
	}
	if !ok {
		return Job{}, ErrEmpty
	}

	fields, err := q.store.HashGetAll(ctx, key)
	if err != nil {
		return Job{}, err
	}
	if len(fields) == 0 {
		return Job{Key: key}, &PartialJobError{Key: key}
	}

	// Best effort. The pop above made the caller the sole owner of the key,
	// and a field map that outlives its job is an orphan, not a hazard.
	_ = q.store.HashDelete(ctx, key)

	return Job{Key: key, Fields: fields}, nil
}

// PeekTail reports the most recently enqueued key without consuming it.
// ok is false when the queue is empty.
func (q *Queue) PeekTail(ctx context.Context) (key string, ok bool, err error) {
	return q.store.ListPeekTail(ctx, q.listKey)
}
