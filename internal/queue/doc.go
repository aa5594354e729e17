// Package queue implements named FIFO job queues over a pluggable job
// store.
//
// A job is an opaque field map filed under a caller-supplied key. Producers
// enqueue onto a named queue; consumers dequeue the oldest pending job.
// There are no leases, retries, or acknowledgements: a dequeue permanently
// consumes the job, and redelivery is the caller's problem.
//
// # Keyspace
//
// Queues keep all durable state in the store under two kinds of key:
//
//	queue:{name} - ordered list of pending job keys, oldest first
//	{job key}    - field map of one job, alive only while pending
//
// Queue identity is the name: the list key is derived from it, so two Queue
// values for the same name are interchangeable and replacement never
// strands pending jobs.
//
// # Job Lifecycle
//
//  1. Enqueue: key appended to the list tail, fields written under the key,
//     atomically.
//  2. Dequeue: head key popped, fields read, fields deleted.
//
// A popped key whose fields are missing is surfaced as *PartialJobError
// rather than silently dropped.
//
// # Registry
//
// Registry maps names to queues and is the single authority on which
// queues exist. Callers route operations through it; an unknown name fails
// with ErrQueueNotFound, while an empty queue reports ErrEmpty. The two are
// distinct conditions and never substitute for one another.
package queue
