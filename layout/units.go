package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ByLCY/twips/twips"
	"github.com/ByLCY/twips/units"
)

// LineHeightKind distinguishes factor-based vs absolute line-height specification.
type LineHeightKind int

const (
	LineHeightFactor LineHeightKind = iota
	LineHeightAbsolute
)

// defaultLineHeightFactor applies when a spec carries no usable kind.
const defaultLineHeightFactor = 1.4

// LineHeightSpec preserves original author intent: either a factor (e.g., 1.2x) or an absolute length (e.g., 18pt).
type LineHeightSpec struct {
	Kind   LineHeightKind `json:"kind"`
	Factor float64        `json:"factor,omitempty"`
	Len    units.Length   `json:"len,omitempty"`
}

// ParseLineHeight accepts "1.2x" for a factor or any length string for an absolute height.
func ParseLineHeight(s string) (LineHeightSpec, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	if f, ok := strings.CutSuffix(v, "x"); ok {
		factor, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return LineHeightSpec{}, fmt.Errorf("layout: invalid line-height factor %q", s)
		}
		return factorSpec(s, factor)
	}
	l, err := units.ParseLength(v)
	if err != nil {
		return LineHeightSpec{}, fmt.Errorf("layout: line-height: %w", err)
	}
	if l.Unit == units.UnitNone {
		// a bare number is a factor, as in CSS
		return factorSpec(s, l.Value)
	}
	return LineHeightSpec{Kind: LineHeightAbsolute, Len: l}, nil
}

// factorSpec 要求倍数为正的有限值。
func factorSpec(s string, factor float64) (LineHeightSpec, error) {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return LineHeightSpec{}, fmt.Errorf("layout: invalid line-height factor %q", s)
	}
	return LineHeightSpec{Kind: LineHeightFactor, Factor: factor}, nil
}

// Resolve computes the absolute line height for the given font size.
func (s LineHeightSpec) Resolve(fontSize twips.Value) twips.Value {
	switch s.Kind {
	case LineHeightFactor:
		return twips.Mul(fontSize, s.Factor)
	case LineHeightAbsolute:
		return twips.FromLength(s.Len)
	default:
		return twips.Mul(fontSize, defaultLineHeightFactor)
	}
}
