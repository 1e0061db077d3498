// Package record defines the open document model for save data: a generic
// key-value tree with typed leaves. Field extraction and defaulting happen
// through the accessors here rather than at every call site.
package record

import (
	"fmt"
	"time"
)

// TimeFormat is the layout of the record's "time" field. It is used both
// when stamping a save and when parsing it for recency comparison.
const TimeFormat = "2006-01-02 15:04"

// Fields written by the save subsystem itself. Everything else in a record
// comes from the external state provider.
const (
	FieldVersion          = "version"
	FieldTime             = "time"
	FieldScreenshot       = "screenshot"
	FieldScreenshotWidth  = "screenshot_width"
	FieldScreenshotHeight = "screenshot_height"
)

// Record is a save-game document. Values are scalars, nested mappings, or
// sequences, depending on what the codec produced.
type Record map[string]any

// AsRecord converts a decoded value to a Record when it is a mapping.
func AsRecord(v any) (Record, bool) {
	switch v := v.(type) {
	case Record:
		return v, true
	case map[string]any:
		return Record(v), true
	}
	return nil, false
}

// Int reads an integer field, widening from any numeric type a codec may
// produce. JSON decodes numbers to float64, CBOR to int64 or uint64.
func (r Record) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// String reads a string field.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Map reads a nested mapping field. The returned Record shares storage
// with the parent, so mutations through it are visible in the parent.
func (r Record) Map(key string) (Record, bool) {
	return AsRecord(r[key])
}

// Slice reads a sequence field.
func (r Record) Slice(key string) ([]any, bool) {
	s, ok := r[key].([]any)
	return s, ok
}

// Version returns the schema version of the record. A record written
// before versioning existed has no version field and reports 0.
func (r Record) Version() int {
	v, ok := r.Int(FieldVersion)
	if !ok {
		return 0
	}
	return v
}

// Time parses the record's save timestamp.
func (r Record) Time() (time.Time, error) {
	s, ok := r.String(FieldTime)
	if !ok {
		return time.Time{}, fmt.Errorf("record has no %s field", FieldTime)
	}
	return time.Parse(TimeFormat, s)
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case Record:
		return v.Clone()
	case map[string]any:
		return map[string]any(Record(v).Clone())
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
