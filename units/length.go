package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file defines the unit-tagged Length used across layout code.

// Unit represents the unit a Length magnitude is expressed in.
type Unit int

const (
	UnitNone    Unit = iota // unit-less numbers like factors
	Twip                    // 1/1440 inch, 1/20 point
	Point                   // 1/72 inch
	Inch                    // inches
	MM                      // millimetres
	CM                      // centimetres
	HundredthMM             // 1/100 mm, the classic office document unit
	EMU                     // English Metric Unit, 1/914400 inch
	Pixel                   // CSS pixel at 96 dpi
)

// perInch lists how many of each unit fit in one inch.
var perInch = [...]float64{
	UnitNone:    1,
	Twip:        1440,
	Point:       72,
	Inch:        1,
	MM:          25.4,
	CM:          2.54,
	HundredthMM: 2540,
	EMU:         914400,
	Pixel:       96,
}

var unitNames = [...]string{
	UnitNone:    "",
	Twip:        "tw",
	Point:       "pt",
	Inch:        "in",
	MM:          "mm",
	CM:          "cm",
	HundredthMM: "hmm",
	EMU:         "emu",
	Pixel:       "px",
}

// Conversion constants between pt and mm.
const (
	PtToMm = 25.4 / 72
	MmToPt = 1.0 / PtToMm
)

// Sentinel errors returned by ParseLength and ParseUnit.
var (
	ErrUnknownUnit = errors.New("units: unknown unit")
	ErrSyntax      = errors.New("units: invalid length")
)

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool { return u >= UnitNone && int(u) < len(perInch) }

func (u Unit) String() string {
	if !u.Valid() {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// Units lists every absolute unit.
func Units() []Unit {
	return []Unit{Twip, Point, Inch, MM, CM, HundredthMM, EMU, Pixel}
}

// ParseUnit maps a unit suffix such as "pt" or "tw" to its Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return UnitNone, nil
	case "tw", "twip", "twips":
		return Twip, nil
	case "pt":
		return Point, nil
	case "in":
		return Inch, nil
	case "mm":
		return MM, nil
	case "cm":
		return CM, nil
	case "hmm":
		return HundredthMM, nil
	case "emu":
		return EMU, nil
	case "px":
		return Pixel, nil
	}
	return UnitNone, fmt.Errorf("%w %q", ErrUnknownUnit, s)
}

// Length preserves a numeric value with its unit.
// The zero Length is a unit-less zero and behaves as zero in every unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// From returns a Length of v expressed in u.
func From(u Unit, v float64) Length { return Length{Value: v, Unit: u} }

func Twips(v float64) Length       { return From(Twip, v) }
func Points(v float64) Length      { return From(Point, v) }
func Inches(v float64) Length      { return From(Inch, v) }
func Millimetres(v float64) Length { return From(MM, v) }

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to target unit. Unit-less values, and conversions
// to UnitNone, pass the magnitude through unchanged.
func (l Length) To(target Unit) float64 {
	if l.Unit == target || l.Unit == UnitNone || target == UnitNone {
		return l.Value
	}
	if !l.Unit.Valid() || !target.Valid() {
		return l.Value
	}
	return l.Value * perInch[target] / perInch[l.Unit]
}

// In returns the same length re-expressed in target.
func (l Length) In(target Unit) Length {
	return Length{Value: l.To(target), Unit: target}
}

func (l Length) ToMM() float64   { return l.To(MM) }
func (l Length) ToPT() float64   { return l.To(Point) }
func (l Length) ToTwip() float64 { return l.To(Twip) }

// unitWith picks the unit a binary result is stored in: the left operand's,
// unless it carries none.
func (l Length) unitWith(o Length) Unit {
	if l.Unit == UnitNone {
		return o.Unit
	}
	return l.Unit
}

// Add returns l+o, stored in l's unit.
func (l Length) Add(o Length) Length {
	u := l.unitWith(o)
	return Length{Value: l.To(u) + o.To(u), Unit: u}
}

// Sub returns l-o, stored in l's unit.
func (l Length) Sub(o Length) Length {
	u := l.unitWith(o)
	return Length{Value: l.To(u) - o.To(u), Unit: u}
}

// Neg returns -l.
func (l Length) Neg() Length {
	l.Value = -l.Value
	return l
}

// Cmp compares l and o after converting o into l's unit.
func (l Length) Cmp(o Length) int {
	u := l.unitWith(o)
	a, b := l.To(u), o.To(u)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}

// Scalar is the set of dimensionless operands a Length may be scaled by.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Mul returns l scaled by n. The unit is left untouched.
func Mul[N Scalar](l Length, n N) Length {
	l.Value *= float64(n)
	return l
}

// Div returns l divided by n. Dividing by an integer zero panics, matching
// Go's integer division; a floating zero yields an infinite magnitude.
func Div[N Scalar](l Length, n N) Length {
	if n == 0 && isInteger[N]() {
		panic("units: division by zero")
	}
	l.Value /= float64(n)
	return l
}

func isInteger[N Scalar]() bool {
	half := 0.5
	return N(half) == 0
}

// ParseLength parses a length string such as "12pt", "1.5 in" or "-720tw".
// A bare number yields a unit-less Length.
func ParseLength(value string) (Length, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Length{}, fmt.Errorf("%w: empty", ErrSyntax)
	}
	end := len(v)
	for end > 0 {
		c := v[end-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			end--
			continue
		}
		break
	}
	unit, err := ParseUnit(v[end:])
	if err != nil {
		return Length{}, err
	}
	num := strings.TrimSpace(v[:end])
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Length{}, fmt.Errorf("%w %q", ErrSyntax, value)
	}
	return Length{Value: f, Unit: unit}, nil
}

// MustParse is like ParseLength but panics on error. Intended for literals.
func MustParse(value string) Length {
	l, err := ParseLength(value)
	if err != nil {
		panic(err)
	}
	return l
}
