package layout

import (
	"fmt"

	"github.com/ByLCY/twips/twips"
)

const defaultMajorEvery = 4

// BuildSheet 计算标尺页：正文区域、横纵刻度，以及可选的基线网格。
func BuildSheet(page Page, opts RulerOptions) (*Sheet, error) {
	content, err := page.ContentBox()
	if err != nil {
		return nil, err
	}

	step := opts.Step
	if step == (twips.Value{}) {
		// 未设置；显式给出的 0 在下面报错
		step = DefaultStep
	}
	if step.Int() <= 0 {
		return nil, fmt.Errorf("layout: ruler step must be at least 1tw, got %v", step)
	}
	major := opts.MajorEvery
	if major <= 0 {
		major = defaultMajorEvery
	}

	sheet := &Sheet{
		Page:       page,
		Content:    content,
		Horizontal: Ticks(content.Width, step, major),
		Vertical:   Ticks(content.Height, step, major),
		Meta:       opts.Meta,
	}

	if opts.FontSize.Int() > 0 {
		lh := opts.LineHeight.Resolve(opts.FontSize)
		if lh.Int() <= 0 {
			return nil, fmt.Errorf("layout: line height resolves to %v", lh)
		}
		sheet.Baselines = Baselines(content.Height, opts.FontSize, lh)
	}
	return sheet, nil
}

// Ticks 返回 0, step, 2*step … 直到 extent（含）的刻度。
// 位置按 step*i 计算而非逐次累加，避免非 twips 单位下的误差累积。
func Ticks(extent, step twips.Value, majorEvery int) []Tick {
	if step.Int() <= 0 || extent.Int() < 0 {
		return nil
	}
	if majorEvery <= 0 {
		majorEvery = 1
	}
	var ticks []Tick
	for i := 0; ; i++ {
		pos := twips.Mul(step, i)
		if pos.Cmp(extent) > 0 {
			break
		}
		ticks = append(ticks, Tick{Pos: pos, Major: i%majorEvery == 0})
	}
	return ticks
}

// Baselines 返回正文区域内的基线位置：首行基线位于 first，之后每隔 lineHeight 一条。
func Baselines(extent, first, lineHeight twips.Value) []twips.Value {
	if lineHeight.Int() <= 0 {
		return nil
	}
	var out []twips.Value
	for i := 0; ; i++ {
		pos := first.Add(twips.Mul(lineHeight, i))
		if pos.Cmp(extent) > 0 {
			break
		}
		out = append(out, pos)
	}
	return out
}
