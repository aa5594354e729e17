package pebblestore

import (
	"bytes"
	"testing"
)

func TestListEntryKeyOrdering(t *testing.T) {
	a := listEntryKey("queue:foo", 10)
	b := listEntryKey("queue:foo", 11)
	if bytes.Compare(a, b) >= 0 {
		t.Fatalf("expected seq ordering")
	}
	// across the u32 boundary too
	a = listEntryKey("queue:foo", 0xFFFFFFFF)
	b = listEntryKey("queue:foo", 0x100000000)
	if bytes.Compare(a, b) >= 0 {
		t.Fatalf("expected seq ordering across width boundary")
	}
}

func TestLengthPrefixAvoidsCollisions(t *testing.T) {
	// list "a" must not share a prefix with list "a/b"
	pa := listEntryPrefix("a")
	pab := listEntryPrefix("a/b")
	if bytes.HasPrefix(pab, pa) {
		t.Fatalf("prefix collision: %q vs %q", pa, pab)
	}
	ha := hashFieldPrefix("a")
	hab := hashFieldPrefix("a/b")
	if bytes.HasPrefix(hab, ha) {
		t.Fatalf("hash prefix collision: %q vs %q", ha, hab)
	}
}

func TestHashFieldKeyUnderPrefix(t *testing.T) {
	prefix := hashFieldPrefix("job1")
	key := hashFieldKey("job1", "type")
	if !bytes.HasPrefix(key, prefix) {
		t.Fatalf("field key %q not under prefix %q", key, prefix)
	}
	if got := string(key[len(prefix):]); got != "type" {
		t.Fatalf("field suffix: %q", got)
	}
}

func TestPrefixUpperBound(t *testing.T) {
	lo := hashFieldPrefix("job1")
	hi := prefixUpperBound(lo)
	if bytes.Compare(lo, hi) >= 0 {
		t.Fatalf("upper bound not above prefix")
	}
	// a field of 0xFF bytes still sorts inside [lo, hi)
	extreme := append(append([]byte(nil), lo...), 0xFF, 0xFF, 0xFF)
	if bytes.Compare(extreme, hi) >= 0 {
		t.Fatalf("extreme key escapes bound")
	}
	if prefixUpperBound([]byte{0xFF, 0xFF}) != nil {
		t.Fatalf("all-0xFF prefix has no bound")
	}
}
