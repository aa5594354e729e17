package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestListPushPopFIFO(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, v := range []string{"k1", "k2", "k3"} {
		if err := s.ListPushTail(ctx, "queue:foo", v); err != nil {
			t.Fatalf("push %s: %v", v, err)
		}
	}
	for _, want := range []string{"k1", "k2", "k3"} {
		got, ok, err := s.ListPopHead(ctx, "queue:foo")
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if !ok || got != want {
			t.Fatalf("pop: got %q ok=%v, want %q", got, ok, want)
		}
	}
}

func TestListPopHeadEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		v, ok, err := s.ListPopHead(ctx, "queue:void")
		if err != nil {
			t.Fatalf("pop empty: %v", err)
		}
		if ok || v != "" {
			t.Fatalf("pop empty: got %q ok=%v", v, ok)
		}
	}
}

func TestListPeekTail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if _, ok, err := s.ListPeekTail(ctx, "queue:foo"); err != nil || ok {
		t.Fatalf("peek empty: ok=%v err=%v", ok, err)
	}
	_ = s.ListPushTail(ctx, "queue:foo", "k1")
	_ = s.ListPushTail(ctx, "queue:foo", "k2")
	v, ok, err := s.ListPeekTail(ctx, "queue:foo")
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if !ok || v != "k2" {
		t.Fatalf("peek: got %q ok=%v, want k2", v, ok)
	}
	// peek must not consume
	if got, _, _ := s.ListPopHead(ctx, "queue:foo"); got != "k1" {
		t.Fatalf("head changed after peek: %q", got)
	}
}

func TestHashSetGetDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.HashSetFields(ctx, "job1", map[string]string{"type": "email", "to": "a@b"}); err != nil {
		t.Fatalf("hset: %v", err)
	}
	fields, err := s.HashGetAll(ctx, "job1")
	if err != nil {
		t.Fatalf("hgetall: %v", err)
	}
	if len(fields) != 2 || fields["type"] != "email" || fields["to"] != "a@b" {
		t.Fatalf("fields: %v", fields)
	}
	// overwrite one field, leave the other
	if err := s.HashSetFields(ctx, "job1", map[string]string{"type": "sms"}); err != nil {
		t.Fatalf("hset overwrite: %v", err)
	}
	fields, _ = s.HashGetAll(ctx, "job1")
	if fields["type"] != "sms" || fields["to"] != "a@b" {
		t.Fatalf("overwrite: %v", fields)
	}
	if err := s.HashDelete(ctx, "job1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	fields, err = s.HashGetAll(ctx, "job1")
	if err != nil {
		t.Fatalf("hgetall after del: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("expected empty map, got %v", fields)
	}
}

func TestHashGetAllAbsentKey(t *testing.T) {
	s := openTestStore(t)
	fields, err := s.HashGetAll(context.Background(), "nope")
	if err != nil {
		t.Fatalf("hgetall: %v", err)
	}
	if fields == nil || len(fields) != 0 {
		t.Fatalf("want empty non-nil map, got %v", fields)
	}
}

func TestEnqueueWritesBoth(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.Enqueue(ctx, "queue:foo", "job1", map[string]string{"type": "email"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	v, ok, err := s.ListPopHead(ctx, "queue:foo")
	if err != nil || !ok || v != "job1" {
		t.Fatalf("pop: %q ok=%v err=%v", v, ok, err)
	}
	fields, err := s.HashGetAll(ctx, "job1")
	if err != nil {
		t.Fatalf("hgetall: %v", err)
	}
	if fields["type"] != "email" {
		t.Fatalf("fields: %v", fields)
	}
}

func TestEnqueueEmptyFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.Enqueue(ctx, "queue:foo", "bare", nil); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	v, ok, _ := s.ListPopHead(ctx, "queue:foo")
	if !ok || v != "bare" {
		t.Fatalf("pop: %q ok=%v", v, ok)
	}
	fields, err := s.HashGetAll(ctx, "bare")
	if err != nil {
		t.Fatalf("hgetall: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("expected no fields, got %v", fields)
	}
}

func TestPing(t *testing.T) {
	s := openTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
