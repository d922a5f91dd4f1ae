package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupt is returned when a log line cannot be decoded into a Record.
var ErrCorrupt = errors.New("record: corrupt record")

// Action is the command tag stored with every record. Only mutations are
// representable; reads are never logged.
type Action string

const (
	ActionSet Action = "Set"
	ActionRm  Action = "Rm"
)

// Record is a single command as persisted to the store's log file.
//
// Each record is serialized as one newline-terminated JSON object:
//
//	{"action":"Set","key":<string>,"value":<string>}
//	{"action":"Rm","key":<string>}
//
// A removal omits the value field entirely rather than encoding it as
// empty or null, so a Set of a legitimately empty string stays
// unambiguous. Value is a pointer for exactly that reason: nil means
// "no value field", a pointer to "" means an empty value.
type Record struct {
	Action Action  `json:"action"`
	Key    string  `json:"key"`
	Value  *string `json:"value,omitempty"`
}

// NewSet builds a Set record for the given key and value.
func NewSet(key, value string) Record {
	return Record{
		Action: ActionSet,
		Key:    key,
		Value:  &value,
	}
}

// NewRemove builds a removal record for the given key.
func NewRemove(key string) Record {
	return Record{
		Action: ActionRm,
		Key:    key,
	}
}

// Val returns the record's value. It must only be called on Set records;
// Decode and NewSet guarantee the value is present for those.
func (r Record) Val() string {
	return *r.Value
}

// Encode serializes a record to its single-line wire form, including the
// trailing newline.
func Encode(r Record) ([]byte, error) {
	line, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("record: encode %q: %w", r.Key, err)
	}
	return append(line, '\n'), nil
}

// Decode parses one log line into a Record. The trailing newline is
// optional. It is the exact inverse of Encode: any line Encode did not
// produce fails with ErrCorrupt, including well-formed JSON carrying an
// unknown action, a Set without a value field, or an Rm with one.
func Decode(line []byte) (Record, error) {
	line = bytes.TrimSuffix(line, []byte("\n"))

	var r Record
	if err := json.Unmarshal(line, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	switch r.Action {
	case ActionSet:
		if r.Value == nil {
			return Record{}, fmt.Errorf("%w: set record without a value field", ErrCorrupt)
		}
	case ActionRm:
		if r.Value != nil {
			return Record{}, fmt.Errorf("%w: remove record with a value field", ErrCorrupt)
		}
	default:
		return Record{}, fmt.Errorf("%w: unknown action %q", ErrCorrupt, r.Action)
	}

	return r, nil
}
