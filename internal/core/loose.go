package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Loose values are what encoding/json produces for an untyped target when
// numbers are kept as json.Number: map[string]any, []any, string,
// json.Number, bool and nil.

// DecodeLoose parses a single JSON value keeping numbers as json.Number.
// Trailing data after the value is an error.
func DecodeLoose(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

// Objects returns the elements of v that are JSON objects, or nil when v is
// not a sequence.
func Objects(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// IsSequence reports whether v is a JSON array.
func IsSequence(v any) bool {
	_, ok := v.([]any)
	return ok
}

// leading float literal as accepted by JavaScript parseFloat
var floatPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseFloat reads the longest numeric prefix of s after leading whitespace,
// returning 0 when there is none. Non-finite results are also 0.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	lit := floatPrefix.FindString(s)
	if lit == "" {
		return 0
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f == 0 {
		return 0
	}
	return f
}

// Float coerces any loose value to a number, defaulting to 0.
func Float(v any) float64 {
	switch x := v.(type) {
	case nil, bool, map[string]any:
		return 0
	case json.Number:
		return ParseFloat(x.String())
	case string:
		return ParseFloat(x)
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case []any:
		if len(x) == 0 {
			return 0
		}
		return Float(x[0])
	default:
		return ParseFloat(fmt.Sprint(x))
	}
}

func finite(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) || f == 0 {
		return 0
	}
	return f
}

// FiniteNumber reports whether v is a JSON number (not a string) with a
// finite value.
func FiniteNumber(v any) bool {
	switch x := v.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(x.String(), 64)
		return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
	case float64:
		return !math.IsInf(x, 0) && !math.IsNaN(x)
	case float32:
		return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
	case int, int64:
		return true
	default:
		return false
	}
}

// Text renders a scalar loose value as a string. Objects and arrays are "".
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}

// Truthy follows JavaScript truthiness for loose values.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return !math.IsNaN(f) && f != 0
		}
		return f != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}
