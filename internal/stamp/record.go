// Package stamp builds, encodes and persists the timestamp record consumed by
// the site build as data/auto.json.
package stamp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Layout is the format of the updated value: local time, no zone, no
// fractional seconds.
const Layout = "2006-01-02 15:04:05"

// UpdatedKey is the only key a record carries.
const UpdatedKey = "updated"

const indent = "    "

var (
	// ErrEncode is returned when a record cannot be serialized.
	ErrEncode = errors.New("encode timestamp record")
	// ErrInvalidRecord is returned when a document does not hold a valid record.
	ErrInvalidRecord = errors.New("invalid timestamp record")
)

var updatedPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// Record is the single-key document written to the output file.
type Record struct {
	Updated string `json:"updated"`
}

// New formats t in its own location.
func New(t time.Time) Record {
	return Record{Updated: t.Format(Layout)}
}

// Time parses the updated value as a local time.
func (r Record) Time() (time.Time, error) {
	return time.ParseInLocation(Layout, r.Updated, time.Local)
}

// Validate checks the updated value against Layout.
func (r Record) Validate() error {
	if !updatedPattern.MatchString(r.Updated) {
		return fmt.Errorf("%w: %q does not match %s", ErrInvalidRecord, r.Updated, Layout)
	}
	if _, err := r.Time(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}

// fields returns the record as a map so keys are written in sorted order.
func (r Record) fields() map[string]any {
	return map[string]any{UpdatedKey: r.Updated}
}

// Encode serializes r with sorted keys and 4-space indentation. The result
// has no trailing newline.
func Encode(r Record) ([]byte, error) {
	data, err := marshal(r.fields())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

// Decode parses data and checks it holds exactly one valid record.
func Decode(data []byte) (Record, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if doc == nil {
		return Record{}, fmt.Errorf("%w: document is not an object", ErrInvalidRecord)
	}
	raw, ok := doc[UpdatedKey]
	if !ok {
		return Record{}, fmt.Errorf("%w: missing %q key", ErrInvalidRecord, UpdatedKey)
	}
	if len(doc) != 1 {
		return Record{}, fmt.Errorf("%w: expected 1 key, got %d", ErrInvalidRecord, len(doc))
	}

	var r Record
	if err := json.Unmarshal(raw, &r.Updated); err != nil {
		return Record{}, fmt.Errorf("%w: %q is not a string", ErrInvalidRecord, UpdatedKey)
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Canonical re-serializes any JSON document with the rules Encode uses.
// Numbers keep their literal form.
func Canonical(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON document")
	}
	return marshal(v)
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
