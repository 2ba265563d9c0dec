// Package twips provides Value, a length typed as twips (1/1440 inch,
// 1/20 point) for layout code.
//
// A Value wraps a units.Length. The wrapped length keeps whatever unit it
// was built with; it is only converted to twips, and rounded, when read
// through Int. Chained arithmetic on millimetre or point quantities
// therefore loses no precision until the result is observed.
package twips

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"strconv"

	"github.com/ByLCY/twips/units"
)

// Value is a twip-valued distance. The zero Value is zero twips.
//
// Value is compared with Equal or Cmp, not ==: two Values holding the same
// distance in different units are different Go values.
type Value struct {
	l units.Length
}

// New returns a Value of n twips. The magnitude is held as a float64, so
// values are exact only within ±2^53 twips; beyond that
// New and Int round to the nearest representable float.
func New(n int64) Value {
	return Value{l: units.From(units.Twip, float64(n))}
}

// FromLength wraps l. No conversion happens until the value is read.
// A unit-less length is taken as twips; the magnitude is kept as is.
func FromLength(l units.Length) Value {
	if l.Unit == units.UnitNone {
		l.Unit = units.Twip
	}
	return Value{l: l}
}

// Int returns the distance in twips rounded to the nearest integer, halves
// away from zero. Results outside the int64 range saturate to
// math.MaxInt64 or math.MinInt64; NaN reads as 0.
func (v Value) Int() int64 {
	f := math.Round(v.l.To(units.Twip))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1<<63:
		return math.MaxInt64
	case f < -1<<63:
		return math.MinInt64
	}
	return int64(f)
}

// Length returns the wrapped length as stored.
func (v Value) Length() units.Length { return v.l }

func (v Value) Points() float64      { return v.l.To(units.Point) }
func (v Value) Millimetres() float64 { return v.l.To(units.MM) }
func (v Value) Inches() float64      { return v.l.To(units.Inch) }

// AddInt adds n twips to v in place.
func (v *Value) AddInt(n int64) *Value {
	v.l = v.l.Add(units.From(units.Twip, float64(n)))
	return v
}

// SubInt subtracts n twips from v in place.
func (v *Value) SubInt(n int64) *Value {
	v.l = v.l.Sub(units.From(units.Twip, float64(n)))
	return v
}

// Inc adds one twip to v in place. Like New it is exact only within
// ±2^53 twips; past that the increment may be lost to float rounding.
func (v *Value) Inc() *Value {
	return v.AddInt(1)
}

// MulAssign scales v by n in place.
func MulAssign[N units.Scalar](v *Value, n N) *Value {
	v.l = units.Mul(v.l, n)
	return v
}

// DivAssign divides v by n in place. An integer zero divisor panics.
func DivAssign[N units.Scalar](v *Value, n N) *Value {
	v.l = units.Div(v.l, n)
	return v
}

// Mul returns v scaled by n.
func Mul[N units.Scalar](v Value, n N) Value {
	return Value{l: units.Mul(v.l, n)}
}

// Div returns v divided by n. An integer zero divisor panics.
func Div[N units.Scalar](v Value, n N) Value {
	return Value{l: units.Div(v.l, n)}
}

// Neg returns -v. v itself is not modified.
func (v Value) Neg() Value {
	return Value{l: v.l.Neg()}
}

func (v Value) Add(o Value) Value { return Value{l: v.l.Add(o.l)} }
func (v Value) Sub(o Value) Value { return Value{l: v.l.Sub(o.l)} }

func (v Value) AddLength(l units.Length) Value { return v.Add(FromLength(l)) }
func (v Value) SubLength(l units.Length) Value { return v.Sub(FromLength(l)) }

// Plus returns v + n twips.
func (v Value) Plus(n int64) Value { return v.Add(New(n)) }

// Minus returns v - n twips.
func (v Value) Minus(n int64) Value { return v.Sub(New(n)) }

// IntAdd returns n twips + v.
func IntAdd(n int64, v Value) Value { return New(n).Add(v) }

// IntSub returns n twips - v.
func IntSub(n int64, v Value) Value { return New(n).Sub(v) }

// Key returns the canonical map key for v: its rounded twips.
func (v Value) Key() int64 { return v.Int() }

// Equal reports whether v and o round to the same number of twips.
func (v Value) Equal(o Value) bool { return v.Int() == o.Int() }

// Cmp compares v and o by rounded twips and returns -1, 0 or +1.
func (v Value) Cmp(o Value) int {
	a, b := v.Int(), o.Int()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Hash hashes the rounded twips, so Values that are Equal hash equally
// whatever unit they are stored in.
func (v Value) Hash(seed maphash.Seed) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v.Int()))
	return maphash.Bytes(seed, b[:])
}

func (v Value) String() string {
	return strconv.FormatInt(v.Int(), 10) + "tw"
}
