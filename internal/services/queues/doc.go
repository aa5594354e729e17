// Package queues provides the service layer between transports and the
// queue registry.
//
// # Overview
//
// The service is a thin layer that validates caller input, forwards to
// queue.Registry, records Prometheus counters, and logs. It adds no queue
// semantics of its own.
//
// # Error Contract
//
// Registry and store errors pass through unchanged. Transports branch on
// them directly:
//
//   - queue.ErrQueueNotFound: no queue under that name
//   - queue.ErrEmpty: queue exists, nothing pending
//   - *queue.PartialJobError: a key was consumed but had no field map
//   - anything else: the job store failed
package queues
