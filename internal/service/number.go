package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric request field that accepts either a JSON number or a
// numeric string, since HTML form values arrive as strings.
// null, "" and an absent key all leave it unset.
type Number struct {
	raw string
	set bool
}

// NumberOf builds a set Number from its textual form.
func NumberOf(raw string) Number {
	return Number{raw: raw, set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*n = Number{}
		return nil
	}
	*n = Number{raw: raw, set: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(n.raw, 64); err == nil {
		return []byte(n.raw), nil
	}
	return json.Marshal(n.raw)
}

// IsSet reports whether a value was supplied.
func (n Number) IsSet() bool {
	return n.set
}

// Float parses the value as a decimal.
func (n Number) Float() (float64, error) {
	f, err := strconv.ParseFloat(n.raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a number", n.raw)
	}
	return f, nil
}

// Int parses the value as a decimal and drops any fractional part, so "23.9" is 23.
func (n Number) Int() (int, error) {
	f, err := n.Float()
	if err != nil {
		return 0, err
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%q is out of range", n.raw)
	}
	return int(math.Trunc(f)), nil
}
