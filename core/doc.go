// Package core implements a log-structured key-value store backed by a
// single append-only file of newline-delimited JSON records.
//
// Example:
//
//	store, err := core.Open("/tmp/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.Set("foo", "bar")
//	val, ok, err := store.Get("foo")
package core
