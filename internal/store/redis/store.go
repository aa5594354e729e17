// Package redisstore implements store.Store on a Redis server. Queue lists
// map onto RPUSH/LPOP/LRANGE, job field maps onto HSET/HGETALL/DEL, and the
// atomic enqueue composite onto a MULTI/EXEC transaction.
//
// Usage:
//
//	s := redisstore.Open(redisstore.Options{Addr: "localhost:6379"})
//	if err := s.Ping(ctx); err != nil { ... }
//	defer s.Close()
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mitchfriedman/siphon/internal/store"
)

// Compile-time interface check.
var _ store.Store = (*Store)(nil)

// Options configure the Redis client built by Open.
type Options struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// Store implements store.Store backed by a Redis server.
type Store struct {
	client *redis.Client
}

// Open builds a Redis client from opts and wraps it in a Store. The Store
// owns the client; Close releases it.
func Open(opts Options) *Store {
	return New(redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	}))
}

// New wraps an existing client. The Store owns the client from here on.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// ── list operations ──

// ListPushTail appends value to the tail of the list at listKey.
func (s *Store) ListPushTail(ctx context.Context, listKey, value string) error {
	if err := s.client.RPush(ctx, listKey, value).Err(); err != nil {
		return fmt.Errorf("siphon/redisstore: rpush %s: %w", listKey, err)
	}
	return nil
}

// ListPopHead atomically removes and returns the head of the list.
func (s *Store) ListPopHead(ctx context.Context, listKey string) (string, bool, error) {
	v, err := s.client.LPop(ctx, listKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("siphon/redisstore: lpop %s: %w", listKey, err)
	}
	return v, true, nil
}

// ListPeekTail returns the most recently pushed value without removing it.
func (s *Store) ListPeekTail(ctx context.Context, listKey string) (string, bool, error) {
	vals, err := s.client.LRange(ctx, listKey, -1, -1).Result()
	if err != nil {
		return "", false, fmt.Errorf("siphon/redisstore: lrange %s: %w", listKey, err)
	}
	if len(vals) == 0 {
		return "", false, nil
	}
	return vals[0], true, nil
}

// ── hash operations ──

// HashSetFields writes the given fields, overwriting same-named ones.
func (s *Store) HashSetFields(ctx context.Context, hashKey string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.client.HSet(ctx, hashKey, fields).Err(); err != nil {
		return fmt.Errorf("siphon/redisstore: hset %s: %w", hashKey, err)
	}
	return nil
}

// HashGetAll returns the full field map at hashKey; empty map when absent.
func (s *Store) HashGetAll(ctx context.Context, hashKey string) (map[string]string, error) {
	fields, err := s.client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("siphon/redisstore: hgetall %s: %w", hashKey, err)
	}
	if fields == nil {
		fields = map[string]string{}
	}
	return fields, nil
}

// HashDelete removes the field map at hashKey.
func (s *Store) HashDelete(ctx context.Context, hashKey string) error {
	if err := s.client.Del(ctx, hashKey).Err(); err != nil {
		return fmt.Errorf("siphon/redisstore: del %s: %w", hashKey, err)
	}
	return nil
}

// ── composites ──

// Enqueue pushes jobKey onto the list and writes its fields in one
// MULTI/EXEC transaction, so a job's position and its data become visible
// together.
func (s *Store) Enqueue(ctx context.Context, listKey, jobKey string, fields map[string]string) error {
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, listKey, jobKey)
	if len(fields) > 0 {
		pipe.HSet(ctx, jobKey, fields)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("siphon/redisstore: enqueue %s onto %s: %w", jobKey, listKey, err)
	}
	return nil
}

// Ping verifies the Redis connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("siphon/redisstore: ping: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
