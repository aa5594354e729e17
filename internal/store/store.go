package store

import "context"

// Store is the job store contract consumed by the queue engine. It provides
// an ordered list per queue (push-to-tail, pop-from-head) and a flat
// field/value map per job key.
//
// Implementations must make ListPopHead atomic: concurrent callers never
// observe the same head value. Enqueue must apply the list push and the
// field write as one atomic operation.
//
// Any returned error means the backing store could not be reached or
// misbehaved; callers propagate such errors unchanged and perform no
// internal retry.
type Store interface {
	// ListPushTail appends value to the tail of the list at listKey,
	// creating the list if absent.
	ListPushTail(ctx context.Context, listKey, value string) error

	// ListPopHead removes and returns the head of the list at listKey.
	// ok is false when the list is empty or absent.
	ListPopHead(ctx context.Context, listKey string) (value string, ok bool, err error)

	// ListPeekTail returns the most recently pushed value without removing
	// it. Diagnostic use only.
	ListPeekTail(ctx context.Context, listKey string) (value string, ok bool, err error)

	// HashSetFields writes each entry of fields into the map at hashKey,
	// overwriting same-named fields and leaving others untouched.
	HashSetFields(ctx context.Context, hashKey string, fields map[string]string) error

	// HashGetAll returns the full field map at hashKey; an empty map when
	// absent, never nil.
	HashGetAll(ctx context.Context, hashKey string) (map[string]string, error)

	// HashDelete removes the field map at hashKey. Deleting an absent key
	// is not an error.
	HashDelete(ctx context.Context, hashKey string) error

	// Enqueue atomically performs ListPushTail(listKey, jobKey) and
	// HashSetFields(jobKey, fields). An empty fields map writes only the
	// list entry.
	Enqueue(ctx context.Context, listKey, jobKey string, fields map[string]string) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying client or database.
	Close() error
}
