package domain

import "unique"

// Symbol is a value object that wraps a unique.Handle[string].
// It is used to reduce memory usage for frequently repeated strings like
// target outputs and exported variable names.
type Symbol struct {
	h unique.Handle[string]
}

// Intern creates a new Symbol from a string.
// It uses the unique package to intern the string.
func Intern(s string) Symbol {
	return Symbol{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (s Symbol) String() string {
	var zero unique.Handle[string]
	if s.h == zero {
		return ""
	}
	return s.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbol) UnmarshalText(text []byte) error {
	s.h = unique.Make(string(text))
	return nil
}
