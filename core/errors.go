package core

import (
	"errors"

	"github.com/logan-bobo/spark-kv/internal/record"
)

var (
	// ErrKeyNotFound is returned by Remove when the key does not exist.
	ErrKeyNotFound = errors.New("core: key not found")

	// ErrCorruptRecord is returned when a log record cannot be decoded,
	// including when the final record is not newline-terminated. It is
	// the same value as the record package's corruption error, so the
	// two may be used interchangeably with errors.Is.
	ErrCorruptRecord = record.ErrCorrupt

	// ErrIndexCorrupt is returned by Get when the record found at an
	// indexed offset does not match what the index promised.
	ErrIndexCorrupt = errors.New("core: index out of sync with log")

	// ErrOffsetOutOfRange is returned when an indexed offset points at
	// or beyond the write marker.
	ErrOffsetOutOfRange = errors.New("core: offset beyond end of log")
)
