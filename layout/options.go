package layout

import "github.com/ByLCY/twips/twips"

// RulerOptions 配置标尺页的刻度与基线网格。
type RulerOptions struct {
	Step       twips.Value    // 刻度间距，未设置时取 DefaultStep
	MajorEvery int            // 每隔多少个刻度画一个主刻度，<=0 时取 4
	FontSize   twips.Value    // 基线网格的字号，零值时不生成基线
	LineHeight LineHeightSpec // 基线间距
	Meta       DocumentMeta
}

// DefaultStep 是默认刻度间距：1/4 英寸。
var DefaultStep = twips.New(360)
