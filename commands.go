package main

import (
	"fmt"

	"github.com/ByLCY/twips/dsl"
	"github.com/ByLCY/twips/layout"
	canvasrenderer "github.com/ByLCY/twips/renderer/canvas"
	"github.com/ByLCY/twips/twips"
	"github.com/ByLCY/twips/units"
)

// EvalCmd 计算一个或多个长度表达式。
type EvalCmd struct {
	Data  string   `name:"data" help:"绑定到表达式的 JSON 数据"`
	Exprs []string `arg:"" name:"expr" help:"长度表达式，例如 '1in - 2 * 18pt'"`
}

func (c *EvalCmd) Run(env *runEnv) error {
	data, err := decodeData(c.Data)
	if err != nil {
		return err
	}
	for _, src := range c.Exprs {
		v, err := dsl.Eval(src, data)
		if err != nil {
			return fmt.Errorf("计算表达式失败: %w", err)
		}
		env.Log.Debug("eval", "expr", src, "stored", v.Length().String(), "twips", v.Int())
		fmt.Fprintf(env.Out, "%s = %s\n", src, describe(v))
	}
	return nil
}

// describe 以 twips 为主，附带常用单位。
func describe(v twips.Value) string {
	return fmt.Sprintf("%s (%.2fpt, %.3fmm, %.4fin)", v, v.Points(), v.Millimetres(), v.Inches())
}

// ConvertCmd 将一个长度换算到所有单位。
type ConvertCmd struct {
	Length string `arg:"" help:"长度，例如 12pt、1.5in；纯数字按 twips 处理"`
}

func (c *ConvertCmd) Run(env *runEnv) error {
	v, err := twips.Parse(c.Length)
	if err != nil {
		return err
	}
	l := v.Length()
	env.Log.Debug("convert", "input", c.Length, "stored", l.String())
	for _, u := range units.Units() {
		fmt.Fprintf(env.Out, "%-4s %g\n", u, l.To(u))
	}
	fmt.Fprintf(env.Out, "%-4s %d\n", "twip", v.Int())
	return nil
}

// RulerCmd 生成一张带刻度与基线网格的标尺页。
type RulerCmd struct {
	Page        string `default:"A4" help:"纸张名称（A3/A4/A5/B5/Letter/Legal）"`
	Orientation string `default:"portrait" enum:"portrait,landscape" help:"纸张方向"`
	Margin      string `default:"18mm" help:"页边距表达式"`
	Step        string `default:"0.25in" help:"刻度间距表达式"`
	Major       int    `default:"4" help:"每隔多少个刻度画一个主刻度"`
	FontSize    string `help:"基线网格字号表达式，为空则不画基线"`
	LineHeight  string `default:"1.2x" help:"行高：倍数（1.2x）或长度（14pt）"`
	Title       string `default:"Twips ruler" help:"PDF 标题"`
	Data        string `help:"绑定到表达式的 JSON 数据"`
	Out         string `short:"o" default:"output/ruler.pdf" type:"path" help:"PDF 输出路径"`
	Debug       string `type:"path" help:"布局调试 JSON 输出路径"`
}

func (c *RulerCmd) Run(env *runEnv) error {
	sheet, err := c.buildSheet()
	if err != nil {
		return err
	}
	env.Log.Debug("ruler",
		"page", c.Page,
		"content", fmt.Sprintf("%v x %v", sheet.Content.Width, sheet.Content.Height),
		"ticks", len(sheet.Horizontal)+len(sheet.Vertical),
		"baselines", len(sheet.Baselines),
	)
	if err := renderSheet(sheet, c.Out, c.Debug, canvasrenderer.NewRenderer()); err != nil {
		return err
	}
	env.Log.Info("ruler written", "path", c.Out)
	fmt.Fprintf(env.Out, "已生成 PDF：%s\n", c.Out)
	return nil
}

func (c *RulerCmd) buildSheet() (*layout.Sheet, error) {
	data, err := decodeData(c.Data)
	if err != nil {
		return nil, err
	}
	size, err := layout.LookupPageSize(c.Page)
	if err != nil {
		return nil, err
	}
	orientation, err := layout.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	margin, err := dsl.Eval(c.Margin, data)
	if err != nil {
		return nil, fmt.Errorf("页边距: %w", err)
	}
	step, err := dsl.Eval(c.Step, data)
	if err != nil {
		return nil, fmt.Errorf("刻度间距: %w", err)
	}
	opts := layout.RulerOptions{
		Step:       step,
		MajorEvery: c.Major,
		Meta:       layout.DocumentMeta{Title: c.Title, Creator: "twips"},
	}
	if c.FontSize != "" {
		if opts.FontSize, err = dsl.Eval(c.FontSize, data); err != nil {
			return nil, fmt.Errorf("字号: %w", err)
		}
		if opts.LineHeight, err = layout.ParseLineHeight(c.LineHeight); err != nil {
			return nil, err
		}
	}
	page := layout.Page{
		Size:   size.Oriented(orientation),
		Margin: layout.UniformMargin(margin),
	}
	return layout.BuildSheet(page, opts)
}
