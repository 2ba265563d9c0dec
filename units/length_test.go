package units

import (
	"errors"
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		mm := Points(pt).ToMM()
		back := Millimetres(mm).ToPT()
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt mm=%g back=%g diff=%g", pt, mm, back, diff)
		}
	}
}

// TestLengthToConversions 覆盖 Length 在常见单位之间的换算。
func TestLengthToConversions(t *testing.T) {
	cases := []struct {
		in   Length
		to   Unit
		want float64
	}{
		{Inches(1), MM, 25.4},
		{From(CM, 2.54), MM, 25.4},
		{Points(1), Twip, 20},
		{Inches(1), Twip, 1440},
		{Twips(635), EMU, 635 * 635},
		{From(EMU, 635), Twip, 1},
		{From(HundredthMM, 2540), Inch, 1},
		{From(Pixel, 96), Point, 72},
		{Millimetres(10), Point, 10 * MmToPt},
		{From(UnitNone, 7), Twip, 7},
		{Twips(7), UnitNone, 7},
	}
	for _, c := range cases {
		if got := c.in.To(c.to); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("%v 转 %v 期望 %g，实际 %g", c.in, c.to, c.want, got)
		}
	}
}

func TestAddKeepsLeftUnit(t *testing.T) {
	got := Points(1).Add(Twips(10))
	if got.Unit != Point || got.Value != 1.5 {
		t.Fatalf("1pt + 10tw = %v, want 1.5pt", got)
	}
	got = Length{}.Add(Millimetres(3))
	if got.Unit != MM || got.Value != 3 {
		t.Fatalf("0 + 3mm = %v, want 3mm", got)
	}
	got = Inches(1).Sub(Points(36))
	if got.Unit != Inch || got.Value != 0.5 {
		t.Fatalf("1in - 36pt = %v, want 0.5in", got)
	}
}

func TestScalarOperands(t *testing.T) {
	l := Twips(100)
	if got := Mul(l, 3); got.Value != 300 || got.Unit != Twip {
		t.Fatalf("Mul int: %v", got)
	}
	if got := Mul(l, 0.5); got.Value != 50 {
		t.Fatalf("Mul float: %v", got)
	}
	if got := Div(l, uint8(4)); got.Value != 25 {
		t.Fatalf("Div uint8: %v", got)
	}
	if got := Div(l, 0.0); !math.IsInf(got.Value, 1) {
		t.Fatalf("Div float zero: %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("integer division by zero did not panic")
		}
	}()
	Div(l, 0)
}

func TestCmp(t *testing.T) {
	if Points(1).Cmp(Twips(20)) != 0 {
		t.Fatalf("1pt 应等于 20tw")
	}
	if Inches(1).Cmp(Millimetres(25)) != 1 {
		t.Fatalf("1in 应大于 25mm")
	}
	if Twips(-1).Neg().Cmp(Twips(1)) != 0 {
		t.Fatalf("Neg 结果错误")
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"12pt", Points(12)},
		{" 1.5 in ", Inches(1.5)},
		{"-720tw", Twips(-720)},
		{"720TWIPS", Twips(720)},
		{"3", Length{Value: 3}},
		{"2540hmm", From(HundredthMM, 2540)},
		{"1e3emu", From(EMU, 1000)},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseLength(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{"", "pt", "12furlong", "1..2mm", "nan"} {
		_, err := ParseLength(in)
		if err == nil {
			t.Fatalf("ParseLength(%q) 应返回错误", in)
		}
		if !errors.Is(err, ErrSyntax) && !errors.Is(err, ErrUnknownUnit) {
			t.Fatalf("ParseLength(%q) 返回了未知错误类型: %v", in, err)
		}
	}
}

func TestUnitString(t *testing.T) {
	for _, u := range Units() {
		back, err := ParseUnit(u.String())
		if err != nil || back != u {
			t.Fatalf("ParseUnit(%q) = %v, %v", u.String(), back, err)
		}
	}
	if s := Unit(99).String(); s != "Unit(99)" {
		t.Fatalf("invalid unit string %q", s)
	}
}
