// Package pebblestore implements the job store on an embedded Pebble
// database, for single-node deployments that should not depend on an
// external Redis.
//
// # Keyspace
//
//	l/m/{len}/{listKey}             list meta: head seq (BE8) + tail seq (BE8)
//	l/e/{len}/{listKey}/{seq BE8}   one pending value per entry, FIFO by seq
//	h/f/{len}/{hashKey}/{field}     one record per hash field
//
// Caller-supplied key components are length-prefixed so a component
// containing the separator cannot collide with another key's prefix.
// Sequences are big-endian, so byte order equals insertion order and the
// head/tail records never need repair.
//
// # Usage
//
//	db, err := pebblestore.Open(pebblestore.Options{
//	    DataDir: "./data",
//	    Fsync:   pebblestore.FsyncModeInterval,
//	})
//	if err != nil { /* handle */ }
//	s := pebblestore.NewStore(db)
//	defer s.Close()
package pebblestore
