package twips

import (
	"fmt"

	"github.com/ByLCY/twips/units"
)

// Parse reads a length string such as "720", "12pt" or "1.5in". A bare
// number is taken as twips. The parsed unit is kept; see FromLength.
func Parse(s string) (Value, error) {
	l, err := units.ParseLength(s)
	if err != nil {
		return Value{}, fmt.Errorf("twips: %w", err)
	}
	if l.Unit == units.UnitNone {
		l.Unit = units.Twip
	}
	return FromLength(l), nil
}

// MarshalText encodes v as its rounded twips, e.g. "720tw".
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts anything Parse does.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
