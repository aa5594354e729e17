package queue

// Store keys used by queues.
//
// A queue's list key derives from its name alone, and job field maps live
// under the bare job key. Because the list key is deterministic, replacing a
// queue's in-memory object never strands pending jobs: the replacement binds
// to the same list.

// listKeyPrefix namespaces queue lists apart from job hashes in the store.
const listKeyPrefix = "queue:"

// ListKey returns the store key of the named queue's ordered job list.
//
// Format: queue:{name}
func ListKey(name string) string {
	return listKeyPrefix + name
}
