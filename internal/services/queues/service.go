package queues

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchfriedman/siphon/internal/metrics"
	"github.com/mitchfriedman/siphon/internal/queue"
	"github.com/mitchfriedman/siphon/internal/runtime"
	logpkg "github.com/mitchfriedman/siphon/pkg/log"
)

// Service provides queue operations to transports. It validates caller
// input, routes calls through the runtime's registry, and records metrics;
// ordering and job semantics live in internal/queue.
type Service struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
}

// New creates a queues service with default logging.
func New(rt *runtime.Runtime) *Service {
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel))
	logger = logger.With(logpkg.F("component", "queues"))
	return NewWithLogger(rt, logger)
}

// NewWithLogger creates a queues service with a custom logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel))
		logger = logger.With(logpkg.F("component", "queues"))
	}
	return &Service{rt: rt, logger: logger}
}

// Create registers the named queue, replacing any previous registration.
// Pending jobs survive replacement.
func (s *Service) Create(_ context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("queue name required")
	}

	s.rt.Registry().CreateQueue(name)
	metrics.QueuesCreated.Inc()

	s.logger.Info("queue created", logpkg.F("queue", name))
	return nil
}

// Enqueue files the job's fields under key and appends the key to the
// named queue. An empty field map is accepted; the job then carries only
// its key.
func (s *Service) Enqueue(ctx context.Context, queueName, key string, fields map[string]string) error {
	if queueName == "" {
		return fmt.Errorf("queue name required")
	}
	if key == "" {
		return fmt.Errorf("job key required")
	}

	if err := s.rt.Registry().Enqueue(ctx, queueName, key, fields); err != nil {
		return err
	}
	metrics.JobsEnqueued.WithLabelValues(queueName).Inc()

	s.logger.Debug("job enqueued",
		logpkg.F("queue", queueName),
		logpkg.F("key", key),
		logpkg.F("fields", len(fields)),
	)
	return nil
}

// Dequeue pops the oldest pending job from the named queue. Callers
// distinguish outcomes with errors.Is/As: queue.ErrQueueNotFound,
// queue.ErrEmpty, and *queue.PartialJobError all pass through unchanged.
func (s *Service) Dequeue(ctx context.Context, queueName string) (queue.Job, error) {
	if queueName == "" {
		return queue.Job{}, fmt.Errorf("queue name required")
	}

	job, err := s.rt.Registry().Dequeue(ctx, queueName)
	var pe *queue.PartialJobError
	switch {
	case err == nil:
		metrics.JobsDequeued.WithLabelValues(queueName).Inc()
		s.logger.Debug("job dequeued",
			logpkg.F("queue", queueName),
			logpkg.F("key", job.Key),
		)
	case errors.Is(err, queue.ErrEmpty):
		metrics.DequeueEmpty.WithLabelValues(queueName).Inc()
	case errors.As(err, &pe):
		metrics.PartialJobs.WithLabelValues(queueName).Inc()
		s.logger.Warn("popped job without fields",
			logpkg.F("queue", queueName),
			logpkg.F("key", pe.Key),
		)
	}
	return job, err
}

// Queues returns the names of all registered queues, sorted.
func (s *Service) Queues(_ context.Context) []string {
	return s.rt.Registry().Names()
}
