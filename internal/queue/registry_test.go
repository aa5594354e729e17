package queue

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mitchfriedman/siphon/internal/store"
	redisstore "github.com/mitchfriedman/siphon/internal/store/redis"
)

func openTestRedisStore(t *testing.T) store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	st := redisstore.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestRegistryUnknownQueue(t *testing.T) {
	r := NewRegistry(openTestStore(t))
	ctx := context.Background()

	err := r.Enqueue(ctx, "nope", "k1", map[string]string{"a": "1"})
	if !errors.Is(err, ErrQueueNotFound) {
		t.Fatalf("enqueue: err = %v, want ErrQueueNotFound", err)
	}

	_, err = r.Dequeue(ctx, "nope")
	if !errors.Is(err, ErrQueueNotFound) {
		t.Fatalf("dequeue: err = %v, want ErrQueueNotFound", err)
	}
	if errors.Is(err, ErrEmpty) {
		t.Fatalf("unknown queue must not read as empty")
	}
}

func TestRegistryCreateAndRoute(t *testing.T) {
	r := NewRegistry(openTestStore(t))
	ctx := context.Background()

	q := r.CreateQueue("jobs")
	if q.Name() != "jobs" {
		t.Fatalf("name = %q", q.Name())
	}
	if got, ok := r.Get("jobs"); !ok || got != q {
		t.Fatalf("get returned %v, %v", got, ok)
	}

	if err := r.Enqueue(ctx, "jobs", "k1", map[string]string{"a": "1"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	job, err := r.Dequeue(ctx, "jobs")
	if err != nil || job.Key != "k1" {
		t.Fatalf("dequeue: key=%q err=%v", job.Key, err)
	}
}

func TestCreateQueueReplacementKeepsJobs(t *testing.T) {
	r := NewRegistry(openTestStore(t))
	ctx := context.Background()

	r.CreateQueue("jobs")
	if err := r.Enqueue(ctx, "jobs", "k1", map[string]string{"a": "1"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	// Re-creating the queue replaces the entry but binds the same list.
	r.CreateQueue("jobs")

	job, err := r.Dequeue(ctx, "jobs")
	if err != nil || job.Key != "k1" {
		t.Fatalf("dequeue after replace: key=%q err=%v", job.Key, err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry(openTestStore(t))

	if names := r.Names(); len(names) != 0 {
		t.Fatalf("fresh registry names = %v", names)
	}
	for _, name := range []string{"sms", "email", "push"} {
		r.CreateQueue(name)
	}
	want := []string{"email", "push", "sms"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
}

// Two producers, two queues, one worker each. Jobs never cross queues and
// draining one leaves the other untouched.
func runIndependentQueues(t *testing.T, st store.Store) {
	t.Helper()
	r := NewRegistry(st)
	ctx := context.Background()

	r.CreateQueue("email")
	r.CreateQueue("sms")

	if err := r.Enqueue(ctx, "email", "e1", map[string]string{"subject": "hi"}); err != nil {
		t.Fatalf("enqueue email: %v", err)
	}
	if err := r.Enqueue(ctx, "sms", "s1", map[string]string{"to": "+15550100"}); err != nil {
		t.Fatalf("enqueue sms: %v", err)
	}

	job, err := r.Dequeue(ctx, "email")
	if err != nil || job.Key != "e1" || job.Fields["subject"] != "hi" {
		t.Fatalf("email dequeue: %+v err=%v", job, err)
	}
	if _, err := r.Dequeue(ctx, "email"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("email should be drained: %v", err)
	}

	job, err = r.Dequeue(ctx, "sms")
	if err != nil || job.Key != "s1" || job.Fields["to"] != "+15550100" {
		t.Fatalf("sms dequeue: %+v err=%v", job, err)
	}
}

func TestQueuesIndependent(t *testing.T) {
	runIndependentQueues(t, openTestStore(t))
}

func TestQueuesIndependentOnRedis(t *testing.T) {
	runIndependentQueues(t, openTestRedisStore(t))
}
