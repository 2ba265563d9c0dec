package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ByLCY/twips/layout"
	"github.com/ByLCY/twips/renderer"
)

// CLI 定义 twips 命令行。
type CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"输出调试日志到 stderr"`

	Eval    EvalCmd    `cmd:"" help:"计算长度表达式并以 twips 输出"`
	Convert ConvertCmd `cmd:"" help:"将一个长度换算到所有单位"`
	Ruler   RulerCmd   `cmd:"" help:"生成标尺 PDF"`
}

// runEnv 是各子命令共享的运行环境。
type runEnv struct {
	Out io.Writer
	Log *slog.Logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("twips"),
		kong.Description("Twip-typed length calculator and ruler generator"),
		kong.UsageOnError(),
	)
	env := &runEnv{Out: os.Stdout, Log: newLogger(os.Stderr, cli.Verbose)}
	ctx.FatalIfErrorf(ctx.Run(env))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// decodeData 解析 --data 传入的 JSON，空串返回 nil。
func decodeData(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("解析 data JSON 失败: %w", err)
	}
	return data, nil
}

// renderSheet 渲染并写出 PDF，必要时同时写出调试 JSON。
func renderSheet(sheet *layout.Sheet, outputPath, debugPath string, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	if debugPath != "" {
		if err := writeDebug(sheet, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	pdfBytes, err := r.Render(sheet)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

func writeDebug(sheet *layout.Sheet, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(sheet, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
