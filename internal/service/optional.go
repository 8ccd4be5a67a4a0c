package service

import (
	"bytes"
	"encoding/json"
)

// OptionalString tells an absent key apart from an explicit null and from a value.
// Absent leaves the field untouched on update, null clears it.
type OptionalString struct {
	value string
	set   bool
	null  bool
}

// StringOf builds a set OptionalString holding s.
func StringOf(s string) OptionalString {
	return OptionalString{value: s, set: true}
}

// NullString builds an OptionalString that was sent as null.
func NullString() OptionalString {
	return OptionalString{set: true, null: true}
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key is present.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = NullString()
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*o = StringOf(s)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// IsSet reports whether the key was present, null included.
func (o OptionalString) IsSet() bool { return o.set }

// IsNull reports whether the key was sent as null.
func (o OptionalString) IsNull() bool { return o.null }

// Value returns the string, empty when unset or null.
func (o OptionalString) Value() string { return o.value }
