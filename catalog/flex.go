package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// flexNumber is a JSON number that may also arrive as a numeric string.
// Anything that is not a number leaves it unset instead of failing the
// whole record.
type flexNumber struct {
	value float64
	set   bool
}

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	*f = flexNumber{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		value = n
	default:
		return nil
	}

	if fitsInt(value) {
		f.value, f.set = value, true
	}

	return nil
}

// fitsInt reports whether v converts to an int64 without losing meaning.
// NaN and infinities never do.
func fitsInt(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= math.MinInt64 && v < math.MaxInt64
}

func (f flexNumber) Int() int {
	return int(f.value)
}

// flexString is a JSON string that tolerates numbers and booleans,
// since codes are sometimes sent as bare numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	*f = ""

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case string:
		*f = flexString(v)
	case float64:
		*f = flexString(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		*f = flexString(strconv.FormatBool(v))
	}

	return nil
}
