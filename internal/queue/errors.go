package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry and queue operations.
var (
	// ErrQueueNotFound reports an operation against a name no queue was
	// created under. Raised only at the Registry boundary.
	ErrQueueNotFound = errors.New("siphon: queue not found")

	// ErrEmpty reports a dequeue against a queue with no pending jobs. Like
	// io.EOF it marks a normal condition, not a fault, and is never
	// conflated with ErrQueueNotFound.
	ErrEmpty = errors.New("siphon: queue is empty")
)

// PartialJobError reports a freshly popped job key that had no field map:
// the key was consumed from the queue but its data was deleted out-of-band
// or never written. The key is preserved so the caller still learns what
// was consumed.
type PartialJobError struct {
	Key string
}

func (e *PartialJobError) Error() string {
	return fmt.Sprintf("siphon: job %q has no fields", e.Key)
}
