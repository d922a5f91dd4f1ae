package core

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/logan-bobo/spark-kv/internal/record"
)

// logFile wraps the append-only data file backing a Store.
//
// The write marker tracks the end of the last confirmed append. Bytes in
// [0, marker) are complete, newline-terminated records; the marker only
// advances after a write (and, depending on the sync mode, a sync) has
// succeeded, so a failed append never exposes a partial record to reads.
type logFile struct {
	f      *os.File
	marker int64
}

func openLogFile(path string) (*logFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to stat log file: %w", err)
	}

	return &logFile{f: f, marker: info.Size()}, nil
}

// append writes an encoded record at the write marker and returns the
// offset the record starts at. The marker advances only once the write
// has been confirmed.
func (lf *logFile) append(data []byte, mode SyncMode) (uint64, error) {
	offset := lf.marker

	if _, err := lf.f.WriteAt(data, offset); err != nil {
		return 0, fmt.Errorf("writing record: %w", err)
	}

	if mode == SyncAlways {
		if err := lf.f.Sync(); err != nil {
			return 0, fmt.Errorf("syncing log file: %w", err)
		}
	}

	lf.marker += int64(len(data))
	return uint64(offset), nil
}

// readRecordAt decodes the single record starting at offset. Offsets at
// or beyond the write marker are out of range.
func (lf *logFile) readRecordAt(offset uint64) (record.Record, error) {
	if int64(offset) >= lf.marker {
		return record.Record{}, fmt.Errorf("%w: offset %d, write marker %d", ErrOffsetOutOfRange, offset, lf.marker)
	}

	section := io.NewSectionReader(lf.f, int64(offset), lf.marker-int64(offset))

	line, err := bufio.NewReader(section).ReadBytes('\n')
	if err == io.EOF {
		return record.Record{}, fmt.Errorf("%w: unterminated record at offset %d", record.ErrCorrupt, offset)
	}
	if err != nil {
		return record.Record{}, fmt.Errorf("reading record at offset %d: %w", offset, err)
	}

	rec, err := record.Decode(line)
	if err != nil {
		return record.Record{}, fmt.Errorf("offset %d: %w", offset, err)
	}

	return rec, nil
}

// replay returns an iterator over every record between the start of the
// file and the write marker, in log order.
func (lf *logFile) replay() *logIterator {
	section := io.NewSectionReader(lf.f, 0, lf.marker)
	return &logIterator{r: bufio.NewReader(section)}
}

func (lf *logFile) size() int64 {
	return lf.marker
}

func (lf *logFile) close() error {
	return lf.f.Close()
}

// logIterator walks the log one record at a time. Typical use:
//
//	it := lf.replay()
//	for it.Next() {
//		rec, offset := it.Record(), it.Offset()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type logIterator struct {
	r    *bufio.Reader
	next uint64

	offset uint64
	rec    record.Record
	err    error
}

// Next advances the cursor to the next record and returns true if successful.
func (it *logIterator) Next() bool {
	if it.err != nil {
		return false
	}

	line, err := it.r.ReadBytes('\n')
	if err == io.EOF {
		if len(line) == 0 {
			return false
		}
		it.err = fmt.Errorf("%w: unterminated record at offset %d", record.ErrCorrupt, it.next)
		return false
	}
	if err != nil {
		it.err = fmt.Errorf("reading record at offset %d: %w", it.next, err)
		return false
	}

	rec, err := record.Decode(line)
	if err != nil {
		it.err = fmt.Errorf("offset %d: %w", it.next, err)
		return false
	}

	it.offset = it.next
	it.next += uint64(len(line))
	it.rec = rec
	return true
}

// Record returns the current record.
func (it *logIterator) Record() record.Record { return it.rec }

// Offset returns the byte offset the current record starts at.
func (it *logIterator) Offset() uint64 { return it.offset }

// Err exposes iterator errors, if any.
func (it *logIterator) Err() error { return it.err }
