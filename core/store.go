package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/logan-bobo/spark-kv/internal/lock"
	"github.com/logan-bobo/spark-kv/internal/record"
)

// Store is a log-structured key-value store backed by a single
// append-only file of newline-delimited JSON records.
//
// Every mutation is appended to the log before the in-memory index is
// touched, so the log is always the source of truth and the index can
// be rebuilt from it at any time.
//
// A Store is not safe for concurrent use.
type Store struct {
	lockFile *os.File
	log      *logFile
	keyDir   *KeyDir
	syncMode SyncMode
}

// Open opens the store rooted at dir, creating the directory and log
// file if they do not exist. The directory is locked for the lifetime
// of the Store, so a second Open of the same directory fails until
// Close is called.
//
// Opening replays the log from the beginning to rebuild the in-memory
// index. A record that cannot be decoded, including a torn final write,
// makes Open fail with ErrCorruptRecord rather than serve partial data.
func Open(dir string, opts ...Option) (*Store, error) {
	cfg := config{syncMode: SyncAlways}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create store directory: %w", err)
	}

	lockFile, err := lock.LockDirectory(dir)
	if err != nil {
		return nil, err
	}

	lf, err := openLogFile(filepath.Join(dir, DataFileName))
	if err != nil {
		lock.UnlockDirectory(lockFile)
		return nil, err
	}

	keyDir := NewKeyDir()

	it := lf.replay()
	for it.Next() {
		rec := it.Record()
		switch rec.Action {
		case record.ActionSet:
			keyDir.Put(rec.Key, it.Offset())
		case record.ActionRm:
			keyDir.Remove(rec.Key)
		}
	}
	if err := it.Err(); err != nil {
		lf.close()
		lock.UnlockDirectory(lockFile)
		return nil, err
	}

	return &Store{
		lockFile: lockFile,
		log:      lf,
		keyDir:   keyDir,
		syncMode: cfg.syncMode,
	}, nil
}

// Set stores value under key, overwriting any previous value. The
// record is appended to the log before the index is updated.
func (s *Store) Set(key, value string) error {
	encoded, err := record.Encode(record.NewSet(key, value))
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	offset, err := s.log.append(encoded, s.syncMode)
	if err != nil {
		return err
	}

	s.keyDir.Put(key, offset)
	return nil
}

// Get returns the value stored under key. The second return value
// reports whether the key was present; a missing key is not an error.
func (s *Store) Get(key string) (string, bool, error) {
	offset, ok := s.keyDir.Lookup(key)
	if !ok {
		return "", false, nil
	}

	rec, err := s.log.readRecordAt(offset)
	if err != nil {
		return "", false, err
	}

	if rec.Action != record.ActionSet || rec.Key != key {
		return "", false, fmt.Errorf("%w: record at offset %d holds %s %q, index expected Set %q",
			ErrIndexCorrupt, offset, rec.Action, rec.Key, key)
	}

	return rec.Val(), true, nil
}

// Remove deletes key from the store. Removing a key that does not
// exist returns ErrKeyNotFound. The tombstone record is appended to
// the log before the index entry is dropped.
func (s *Store) Remove(key string) error {
	if _, ok := s.keyDir.Lookup(key); !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	encoded, err := record.Encode(record.NewRemove(key))
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	if _, err := s.log.append(encoded, s.syncMode); err != nil {
		return err
	}

	s.keyDir.Remove(key)
	return nil
}

// Has reports whether key currently holds a value.
func (s *Store) Has(key string) bool {
	_, ok := s.keyDir.Lookup(key)
	return ok
}

// Keys returns all live keys in ascending order.
func (s *Store) Keys() []string {
	return s.keyDir.Keys()
}

// Len returns the number of live keys.
func (s *Store) Len() int {
	return s.keyDir.Len()
}

// Size returns the position of the write marker, which is the number
// of bytes of confirmed records in the log file.
func (s *Store) Size() int64 {
	return s.log.size()
}

// Close releases the store's directory lock and closes the log file.
// The Store must not be used after Close.
func (s *Store) Close() error {
	var firstErr error

	if s.log != nil {
		if err := s.log.close(); err != nil {
			firstErr = err
		}
		s.log = nil
	}

	if s.lockFile != nil {
		lock.UnlockDirectory(s.lockFile)
		s.lockFile = nil
	}

	return firstErr
}
