package core

import (
	"encoding/json"
	"strconv"
	"time"
)

// scalar is a JSON value that may be written either as a number or as a
// string. The text is kept verbatim and the kind is restored on output.
type scalar struct {
	text    string
	numeric bool
}

func scalarFrom(v any) scalar {
	switch x := v.(type) {
	case string:
		return scalar{text: x}
	case json.Number:
		return scalar{text: x.String(), numeric: true}
	case float64:
		return scalar{text: strconv.FormatFloat(x, 'f', -1, 64), numeric: true}
	case int:
		return scalar{text: strconv.Itoa(x), numeric: true}
	case int64:
		return scalar{text: strconv.FormatInt(x, 10), numeric: true}
	default:
		return scalar{}
	}
}

func (s scalar) String() string { return s.text }

// IsZero reports whether the value is absent, empty, or the number zero.
func (s scalar) IsZero() bool {
	if s.text == "" {
		return true
	}
	if s.numeric {
		f, err := strconv.ParseFloat(s.text, 64)
		return err == nil && f == 0
	}
	return false
}

// Numeric reports whether the value was written as a JSON number.
func (s scalar) Numeric() bool { return s.numeric }

func (s scalar) MarshalJSON() ([]byte, error) {
	if s.text == "" {
		return []byte("null"), nil
	}
	if s.numeric && json.Valid([]byte(s.text)) {
		return []byte(s.text), nil
	}
	return json.Marshal(s.text)
}

func (s *scalar) UnmarshalJSON(data []byte) error {
	v, err := DecodeLoose(data)
	if err != nil {
		return err
	}
	*s = scalarFrom(v)
	return nil
}

// ID identifies records, goals and payouts.
type ID struct{ scalar }

func IDFrom(v any) ID { return ID{scalarFrom(v)} }

// StringID builds an ID serialized as a JSON string.
func StringID(s string) ID { return ID{scalar{text: s}} }

// NumericID builds an ID serialized as a JSON number.
func NumericID(s string) ID { return ID{scalar{text: s, numeric: true}} }

// Key returns the id text as it was written.
func (id ID) Key() string { return id.text }

// Identity is the dedup key. Numbers compare by value, so 1 and 1.0 are the
// same id, while the number 1 and the string "1" are different ids.
func (id ID) Identity() string {
	if id.numeric {
		if f, err := strconv.ParseFloat(id.text, 64); err == nil {
			if f == 0 {
				f = 0 // -0
			}
			return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return "s:" + id.text
}

// Timestamp is the sortable instant of a record: an ISO-8601 string or
// epoch milliseconds.
type Timestamp struct{ scalar }

func TimestampFrom(v any) Timestamp { return Timestamp{scalarFrom(v)} }

// ISOTimestamp formats t like JavaScript's Date.toISOString.
func ISOTimestamp(t time.Time) Timestamp {
	return Timestamp{scalar{text: t.UTC().Format(isoLayout)}}
}

// EpochTimestamp stores t as epoch milliseconds.
func EpochTimestamp(t time.Time) Timestamp {
	return Timestamp{scalar{text: strconv.FormatInt(t.UnixMilli(), 10), numeric: true}}
}

const isoLayout = "2006-01-02T15:04:05.000Z"

// Time parses the timestamp. ok is false when it cannot be interpreted.
func (ts Timestamp) Time() (t time.Time, ok bool) {
	if ts.text == "" {
		return time.Time{}, false
	}
	if ts.numeric {
		f, err := strconv.ParseFloat(ts.text, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(f)), true
	}
	for _, layout := range []string{time.RFC3339Nano, isoLayout, time.RFC3339} {
		if t, err := time.Parse(layout, ts.text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
