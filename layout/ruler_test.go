package layout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/twips/twips"
	"github.com/ByLCY/twips/units"
)

func ints(vs []twips.Value) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.Int()
	}
	return out
}

func TestPageSizes(t *testing.T) {
	a4, err := LookupPageSize("a4")
	if err != nil {
		t.Fatalf("LookupPageSize: %v", err)
	}
	if a4.Width.Int() != 11906 || a4.Height.Int() != 16838 {
		t.Fatalf("A4 = %v x %v", a4.Width, a4.Height)
	}
	// ISO sizes are rounded from millimetres.
	if w := twips.FromLength(units.Millimetres(210)); !w.Equal(a4.Width) {
		t.Fatalf("210mm = %v, want %v", w, a4.Width)
	}
	land := a4.Oriented(Landscape)
	if land.Width.Int() != 16838 || land.Height.Int() != 11906 {
		t.Fatalf("landscape A4 = %v x %v", land.Width, land.Height)
	}
	if back := land.Oriented(Portrait); back != a4 {
		t.Fatalf("portrait of landscape = %+v", back)
	}
	if _, err := LookupPageSize("B52"); !errors.Is(err, ErrUnknownPageSize) {
		t.Fatalf("expected ErrUnknownPageSize, got %v", err)
	}
	if diff := cmp.Diff([]string{"A3", "A4", "A5", "B5", "LEGAL", "LETTER"}, PageSizeNames()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOrientation(t *testing.T) {
	if o, err := ParseOrientation("Landscape"); err != nil || o != Landscape {
		t.Fatalf("landscape = %v, %v", o, err)
	}
	if o, err := ParseOrientation(""); err != nil || o != Portrait {
		t.Fatalf("empty = %v, %v", o, err)
	}
	if _, err := ParseOrientation("sideways"); err == nil {
		t.Fatalf("sideways 应失败")
	}
}

func TestContentBox(t *testing.T) {
	a4, _ := LookupPageSize("A4")
	page := Page{Size: a4, Margin: UniformMargin(twips.FromLength(units.Inches(1)))}
	box, err := page.ContentBox()
	if err != nil {
		t.Fatalf("ContentBox: %v", err)
	}
	got := []int64{box.X.Int(), box.Y.Int(), box.Width.Int(), box.Height.Int()}
	if diff := cmp.Diff([]int64{1440, 1440, 9026, 13958}, got); diff != "" {
		t.Fatalf("content box mismatch (-want +got):\n%s", diff)
	}

	page.Margin = UniformMargin(twips.New(6000))
	if _, err := page.ContentBox(); !errors.Is(err, ErrMarginOverflow) {
		t.Fatalf("expected ErrMarginOverflow, got %v", err)
	}
}

func TestTicks(t *testing.T) {
	ticks := Ticks(twips.New(1440), twips.New(360), 4)
	var pos []int64
	var majors []int64
	for _, tk := range ticks {
		pos = append(pos, tk.Pos.Int())
		if tk.Major {
			majors = append(majors, tk.Pos.Int())
		}
	}
	if diff := cmp.Diff([]int64{0, 360, 720, 1080, 1440}, pos); diff != "" {
		t.Fatalf("tick positions (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{0, 1440}, majors); diff != "" {
		t.Fatalf("major ticks (-want +got):\n%s", diff)
	}

	// a step given in millimetres keeps hitting exact multiples
	mm := Ticks(twips.FromLength(units.Millimetres(100)), twips.FromLength(units.Millimetres(10)), 5)
	if len(mm) != 11 {
		t.Fatalf("expected 11 ticks over 100mm, got %d", len(mm))
	}
	if last := mm[len(mm)-1].Pos.Length(); last.Unit != units.MM || last.Value != 100 {
		t.Fatalf("last tick = %v", last)
	}

	if Ticks(twips.New(100), twips.New(0), 4) != nil {
		t.Fatalf("zero step must yield no ticks")
	}
}

func TestBaselines(t *testing.T) {
	got := Baselines(twips.New(1000), twips.New(240), twips.New(288))
	if diff := cmp.Diff([]int64{240, 528, 816}, ints(got)); diff != "" {
		t.Fatalf("baselines (-want +got):\n%s", diff)
	}
}

func TestBuildSheet(t *testing.T) {
	letter, _ := LookupPageSize("letter")
	page := Page{Size: letter, Margin: UniformMargin(twips.New(1440))}

	sheet, err := BuildSheet(page, RulerOptions{})
	if err != nil {
		t.Fatalf("BuildSheet: %v", err)
	}
	// 9360tw content width / 360tw step = 26 intervals
	if len(sheet.Horizontal) != 27 {
		t.Fatalf("horizontal ticks = %d, want 27", len(sheet.Horizontal))
	}
	if sheet.Baselines != nil {
		t.Fatalf("baselines without font size")
	}

	sheet, err = BuildSheet(page, RulerOptions{
		Step:       twips.FromLength(units.Inches(1)),
		FontSize:   twips.FromLength(units.Points(12)),
		LineHeight: LineHeightSpec{Kind: LineHeightFactor, Factor: 1.5},
	})
	if err != nil {
		t.Fatalf("BuildSheet: %v", err)
	}
	if len(sheet.Vertical) != 10 { // 12960tw / 1440tw = 9 intervals
		t.Fatalf("vertical ticks = %d, want 10", len(sheet.Vertical))
	}
	if len(sheet.Baselines) == 0 || sheet.Baselines[1].Sub(sheet.Baselines[0]).Int() != 360 {
		t.Fatalf("unexpected baselines %v", sheet.Baselines)
	}

	if _, err := BuildSheet(page, RulerOptions{Step: twips.New(-10)}); err == nil {
		t.Fatalf("negative step 应失败")
	}
	for _, step := range []twips.Value{twips.New(0), twips.FromLength(units.Millimetres(0)), twips.FromLength(units.Length{})} {
		if _, err := BuildSheet(page, RulerOptions{Step: step}); err == nil {
			t.Fatalf("explicit zero step %v 应失败，而不是回退到 DefaultStep", step)
		}
	}
}

func TestWriteDebugJSON(t *testing.T) {
	a5, _ := LookupPageSize("A5")
	sheet, err := BuildSheet(Page{Size: a5}, RulerOptions{Meta: DocumentMeta{Title: "ruler"}})
	if err != nil {
		t.Fatalf("BuildSheet: %v", err)
	}
	path := filepath.Join(t.TempDir(), "sheet.json")
	if err := WriteDebugJSON(sheet, path); err != nil {
		t.Fatalf("WriteDebugJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取调试 JSON 失败: %v", err)
	}
	for _, want := range []string{`"width": "8391tw"`, `"title": "ruler"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("debug JSON missing %s:\n%s", want, data)
		}
	}
	if err := WriteDebugJSON(nil, path); err != nil {
		t.Fatalf("nil sheet: %v", err)
	}
}
