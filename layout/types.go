package layout

import "github.com/ByLCY/twips/twips"

// 该文件定义标尺页的布局结果，供渲染与调试 JSON 共用。所有尺寸均为 twips。

// Sheet 保存一张标尺页：页面、正文区域、刻度与基线网格。
type Sheet struct {
	Page       Page          `json:"page"`
	Content    Rect          `json:"content"`
	Horizontal []Tick        `json:"horizontal"`
	Vertical   []Tick        `json:"vertical"`
	Baselines  []twips.Value `json:"baselines,omitempty"`
	Meta       DocumentMeta  `json:"meta"`
}

// Size 记录页面宽高。
type Size struct {
	Width  twips.Value `json:"width"`
	Height twips.Value `json:"height"`
}

// Margin 记录四边页边距。
type Margin struct {
	Top    twips.Value `json:"top"`
	Right  twips.Value `json:"right"`
	Bottom twips.Value `json:"bottom"`
	Left   twips.Value `json:"left"`
}

// Rect 是以左上角为原点的矩形。
type Rect struct {
	X      twips.Value `json:"x"`
	Y      twips.Value `json:"y"`
	Width  twips.Value `json:"width"`
	Height twips.Value `json:"height"`
}

// Tick 是标尺上的一个刻度，Pos 相对于正文区域起点。
type Tick struct {
	Pos   twips.Value `json:"pos"`
	Major bool        `json:"major,omitempty"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
