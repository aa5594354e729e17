package pebblestore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/mitchfriedman/siphon/internal/store"
)

// Compile-time interface check.
var _ store.Store = (*Store)(nil)

// Store implements store.Store on an embedded Pebble database. Each list is
// a head/tail record plus one entry record per pending value; each hash is
// one record per field. List mutations serialize on a single mutex so
// head/tail read-modify-write cycles stay consistent; every mutation commits
// as one batch, so it is atomic and, under FsyncModeAlways, durable.
type Store struct {
	db *DB

	mu sync.Mutex
}

// NewStore wraps an open DB. The Store owns the DB; Close releases it.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// listMeta is the decoded head/tail record of one list. head == tail means
// the list is empty; both only ever grow.
type listMeta struct {
	head uint64
	tail uint64
}

func (m listMeta) encode() []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], m.head)
	binary.BigEndian.PutUint64(buf[8:16], m.tail)
	return buf
}

func (s *Store) readListMeta(listKey string) (listMeta, error) {
	val, err := s.db.Get(listMetaKey(listKey))
	if errors.Is(err, pebble.ErrNotFound) {
		return listMeta{}, nil
	}
	if err != nil {
		return listMeta{}, fmt.Errorf("siphon/pebblestore: read list meta %s: %w", listKey, err)
	}
	if len(val) < 16 {
		return listMeta{}, fmt.Errorf("siphon/pebblestore: corrupt list meta %s: %d bytes", listKey, len(val))
	}
	return listMeta{
		head: binary.BigEndian.Uint64(val[0:8]),
		tail: binary.BigEndian.Uint64(val[8:16]),
	}, nil
}

// ── list operations ──

// ListPushTail appends value to the tail of the list at listKey.
func (s *Store) ListPushTail(ctx context.Context, listKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pushTailLocked(listKey, value, nil)
}

// pushTailLocked writes the entry and bumped meta into one batch, adding
// the extra operations first when provided. Callers hold s.mu.
func (s *Store) pushTailLocked(listKey, value string, extra func(b *pebble.Batch) error) error {
	meta, err := s.readListMeta(listKey)
	if err != nil {
		return err
	}
	b := s.db.NewBatch()
	defer b.Close()
	if extra != nil {
		if err := extra(b); err != nil {
			return err
		}
	}
	if err := b.Set(listEntryKey(listKey, meta.tail), []byte(value), nil); err != nil {
		return fmt.Errorf("siphon/pebblestore: push %s: %w", listKey, err)
	}
	meta.tail++
	if err := b.Set(listMetaKey(listKey), meta.encode(), nil); err != nil {
		return fmt.Errorf("siphon/pebblestore: push %s: %w", listKey, err)
	}
	return s.db.CommitBatch(b)
}

// ListPopHead removes and returns the head of the list at listKey.
func (s *Store) ListPopHead(ctx context.Context, listKey string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.readListMeta(listKey)
	if err != nil {
		return "", false, err
	}
	if meta.head == meta.tail {
		return "", false, nil
	}
	entryKey := listEntryKey(listKey, meta.head)
	val, err := s.db.Get(entryKey)
	if err != nil {
		return "", false, fmt.Errorf("siphon/pebblestore: pop %s at %d: %w", listKey, meta.head, err)
	}
	b := s.db.NewBatch()
	defer b.Close()
	if err := b.Delete(entryKey, nil); err != nil {
		return "", false, fmt.Errorf("siphon/pebblestore: pop %s: %w", listKey, err)
	}
	meta.head++
	if err := b.Set(listMetaKey(listKey), meta.encode(), nil); err != nil {
		return "", false, fmt.Errorf("siphon/pebblestore: pop %s: %w", listKey, err)
	}
	if err := s.db.CommitBatch(b); err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

// ListPeekTail returns the most recently pushed value without removing it.
func (s *Store) ListPeekTail(ctx context.Context, listKey string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.readListMeta(listKey)
	if err != nil {
		return "", false, err
	}
	if meta.head == meta.tail {
		return "", false, nil
	}
	val, err := s.db.Get(listEntryKey(listKey, meta.tail-1))
	if err != nil {
		return "", false, fmt.Errorf("siphon/pebblestore: peek %s: %w", listKey, err)
	}
	return string(val), true, nil
}

// ── hash operations ──

// HashSetFields writes the given fields, overwriting same-named ones.
func (s *Store) HashSetFields(ctx context.Context, hashKey string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	b := s.db.NewBatch()
	defer b.Close()
	if err := setFields(b, hashKey, fields); err != nil {
		return err
	}
	return s.db.CommitBatch(b)
}

func setFields(b *pebble.Batch, hashKey string, fields map[string]string) error {
	for f, v := range fields {
		if err := b.Set(hashFieldKey(hashKey, f), []byte(v), nil); err != nil {
			return fmt.Errorf("siphon/pebblestore: set field %s of %s: %w", f, hashKey, err)
		}
	}
	return nil
}

// HashGetAll returns the full field map at hashKey; empty map when absent.
func (s *Store) HashGetAll(ctx context.Context, hashKey string) (map[string]string, error) {
	lo := hashFieldPrefix(hashKey)
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lo, UpperBound: prefixUpperBound(lo)})
	if err != nil {
		return nil, fmt.Errorf("siphon/pebblestore: hash iter %s: %w", hashKey, err)
	}
	defer iter.Close()

	fields := map[string]string{}
	for ok := iter.First(); ok; ok = iter.Next() {
		field := string(iter.Key()[len(lo):])
		fields[field] = string(iter.Value())
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("siphon/pebblestore: hash iter %s: %w", hashKey, err)
	}
	return fields, nil
}

// HashDelete removes the field map at hashKey.
func (s *Store) HashDelete(ctx context.Context, hashKey string) error {
	lo := hashFieldPrefix(hashKey)
	b := s.db.NewBatch()
	defer b.Close()
	if err := b.DeleteRange(lo, prefixUpperBound(lo), nil); err != nil {
		return fmt.Errorf("siphon/pebblestore: delete hash %s: %w", hashKey, err)
	}
	return s.db.CommitBatch(b)
}

// ── composites ──

// Enqueue pushes jobKey onto the list and writes its fields in one batch,
// so a job's position and its data become visible together.
func (s *Store) Enqueue(ctx context.Context, listKey, jobKey string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pushTailLocked(listKey, jobKey, func(b *pebble.Batch) error {
		return setFields(b, jobKey, fields)
	})
}

// Ping reports whether the database answers reads.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.db.Get([]byte("ping"))
	if err == nil || errors.Is(err, pebble.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("siphon/pebblestore: ping: %w", err)
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
