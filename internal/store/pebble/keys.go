package pebblestore

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for the job store keyspace
const (
	prefixListMeta  = "l/m/" // list head/tail record
	prefixListEntry = "l/e/" // list entries, ordered by sequence
	prefixHashField = "h/f/" // one record per hash field
)

// Caller-supplied components (list keys, hash keys) are length-prefixed so
// that a component containing the separator cannot collide with another
// key's prefix.

// listMetaKey returns the key of a list's head/tail record.
// Format: l/m/{len}/{listKey}
func listMetaKey(listKey string) []byte {
	return []byte(fmt.Sprintf("%s%d/%s", prefixListMeta, len(listKey), listKey))
}

// listEntryPrefix returns the prefix shared by all entries of a list.
// Format: l/e/{len}/{listKey}/
func listEntryPrefix(listKey string) []byte {
	return []byte(fmt.Sprintf("%s%d/%s/", prefixListEntry, len(listKey), listKey))
}

// listEntryKey returns the key of the list entry at seq.
// Format: l/e/{len}/{listKey}/{seq BE8}
func listEntryKey(listKey string, seq uint64) []byte {
	prefix := listEntryPrefix(listKey)
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], seq)
	return key
}

// hashFieldPrefix returns the prefix shared by all fields of a hash.
// Format: h/f/{len}/{hashKey}/
func hashFieldPrefix(hashKey string) []byte {
	return []byte(fmt.Sprintf("%s%d/%s/", prefixHashField, len(hashKey), hashKey))
}

// hashFieldKey returns the key of one field of a hash.
// Format: h/f/{len}/{hashKey}/{field}
func hashFieldKey(hashKey, field string) []byte {
	prefix := hashFieldPrefix(hashKey)
	key := make([]byte, len(prefix)+len(field))
	copy(key, prefix)
	copy(key[len(prefix):], field)
	return key
}

// prefixUpperBound returns the smallest key greater than every key that
// starts with prefix, for use as an exclusive iterator upper bound.
func prefixUpperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil // prefix is all 0xFF
}
