package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ByLCY/twips/twips"
)

// ErrUnknownPageSize 表示纸张名称未登记。
var ErrUnknownPageSize = errors.New("layout: unknown page size")

// ErrMarginOverflow 表示页边距之和超出页面尺寸。
var ErrMarginOverflow = errors.New("layout: margins exceed page size")

// Orientation 表示纸张方向。
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// ParseOrientation 解析 portrait / landscape，空串视为 portrait。
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return Portrait, fmt.Errorf("layout: unknown orientation %q", s)
}

// pageSizes 记录常见纸张的纵向尺寸，ISO 尺寸按毫米换算后取整。
var pageSizes = map[string]Size{
	"A3":     {Width: twips.New(16838), Height: twips.New(23811)},
	"A4":     {Width: twips.New(11906), Height: twips.New(16838)},
	"A5":     {Width: twips.New(8391), Height: twips.New(11906)},
	"B5":     {Width: twips.New(9979), Height: twips.New(14173)},
	"LETTER": {Width: twips.New(12240), Height: twips.New(15840)},
	"LEGAL":  {Width: twips.New(12240), Height: twips.New(20160)},
}

// PageSizeNames 返回已登记的纸张名称（排序后）。
func PageSizeNames() []string {
	names := make([]string, 0, len(pageSizes))
	for name := range pageSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPageSize 按名称（不区分大小写）查找纵向纸张尺寸。
func LookupPageSize(name string) (Size, error) {
	size, ok := pageSizes[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Size{}, fmt.Errorf("%w %q", ErrUnknownPageSize, name)
	}
	return size, nil
}

// Oriented 返回指定方向下的尺寸。
func (s Size) Oriented(o Orientation) Size {
	portrait := s.Width.Cmp(s.Height) <= 0
	if (o == Landscape) == portrait {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// UniformMargin 返回四边相同的页边距。
func UniformMargin(v twips.Value) Margin {
	return Margin{Top: v, Right: v, Bottom: v, Left: v}
}

// Page 描述一张页面：尺寸与页边距。
type Page struct {
	Size   Size   `json:"size"`
	Margin Margin `json:"margin"`
}

// ContentBox 返回扣除页边距后的正文区域。
func (p Page) ContentBox() (Rect, error) {
	w := p.Size.Width.Sub(p.Margin.Left).Sub(p.Margin.Right)
	h := p.Size.Height.Sub(p.Margin.Top).Sub(p.Margin.Bottom)
	if w.Int() < 0 || h.Int() < 0 {
		return Rect{}, fmt.Errorf("%w: content %v x %v", ErrMarginOverflow, w, h)
	}
	return Rect{X: p.Margin.Left, Y: p.Margin.Top, Width: w, Height: h}, nil
}
