package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/twips/layout"
	"github.com/ByLCY/twips/renderer"
	"github.com/ByLCY/twips/twips"
)

// Renderer draws ruler sheets via github.com/tdewolff/canvas.
// canvas works in millimetres; twips are converted only at draw time.
type Renderer struct {
	opts Options
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures stroke colours and tick lengths (in mm).
type Options struct {
	BorderColor   color.Color
	TickColor     color.Color
	BaselineColor color.Color
	LineWidth     float64
	MinorTick     float64
	MajorTick     float64
}

// DefaultOptions returns the options NewRenderer uses.
func DefaultOptions() Options {
	return Options{
		BorderColor:   canvas.Hex("#333333"),
		TickColor:     canvas.Hex("#0F62FE"),
		BaselineColor: canvas.Hex("#D0D7DE"),
		LineWidth:     0.2,
		MinorTick:     2,
		MajorTick:     4,
	}
}

// NewRenderer creates a renderer with DefaultOptions.
func NewRenderer() *Renderer { return NewRendererWithOptions(DefaultOptions()) }

// NewRendererWithOptions fills unset fields of opts from DefaultOptions.
func NewRendererWithOptions(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.BorderColor == nil {
		opts.BorderColor = def.BorderColor
	}
	if opts.TickColor == nil {
		opts.TickColor = def.TickColor
	}
	if opts.BaselineColor == nil {
		opts.BaselineColor = def.BaselineColor
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = def.LineWidth
	}
	if opts.MinorTick <= 0 {
		opts.MinorTick = def.MinorTick
	}
	if opts.MajorTick <= 0 {
		opts.MajorTick = def.MajorTick
	}
	return &Renderer{opts: opts}
}

// Render renders the sheet into a single-page PDF.
func (r *Renderer) Render(sheet *layout.Sheet) ([]byte, error) {
	if sheet == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	width, height := mm(sheet.Page.Size.Width), mm(sheet.Page.Size.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("页面尺寸无效: %v x %v", sheet.Page.Size.Width, sheet.Page.Size.Height)
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	applyMeta(writer, sheet.Meta)

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeWidth(r.opts.LineWidth)

	r.drawBaselines(ctx, sheet)
	r.drawContentBox(ctx, sheet.Content)
	r.drawTicks(ctx, sheet)
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

func (r *Renderer) drawContentBox(ctx *canvas.Context, box layout.Rect) {
	ctx.SetStrokeColor(r.opts.BorderColor)
	ctx.DrawPath(mm(box.X), mm(box.Y), canvas.Rectangle(mm(box.Width), mm(box.Height)))
}

// drawTicks 沿正文区域上边与左边向内绘制刻度。
func (r *Renderer) drawTicks(ctx *canvas.Context, sheet *layout.Sheet) {
	x0, y0 := mm(sheet.Content.X), mm(sheet.Content.Y)
	ctx.SetStrokeColor(r.opts.TickColor)
	for _, tk := range sheet.Horizontal {
		line(ctx, x0+mm(tk.Pos), y0, 0, r.tickLength(tk))
	}
	for _, tk := range sheet.Vertical {
		line(ctx, x0, y0+mm(tk.Pos), r.tickLength(tk), 0)
	}
}

func (r *Renderer) drawBaselines(ctx *canvas.Context, sheet *layout.Sheet) {
	if len(sheet.Baselines) == 0 {
		return
	}
	x0, y0, w := mm(sheet.Content.X), mm(sheet.Content.Y), mm(sheet.Content.Width)
	ctx.SetStrokeColor(r.opts.BaselineColor)
	for _, b := range sheet.Baselines {
		line(ctx, x0, y0+mm(b), w, 0)
	}
}

func (r *Renderer) tickLength(tk layout.Tick) float64 {
	if tk.Major {
		return r.opts.MajorTick
	}
	return r.opts.MinorTick
}

func line(ctx *canvas.Context, x, y, dx, dy float64) {
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(dx, dy)
	ctx.DrawPath(x, y, p)
}

// mm 将 twips 转换为毫米，供 canvas 使用。
func mm(v twips.Value) float64 { return v.Millimetres() }
