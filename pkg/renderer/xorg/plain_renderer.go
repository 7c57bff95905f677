package xorg

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	ast "github.com/honeybbq/xorgconf/pkg/ast/xorg"
	"github.com/honeybbq/xorgconf/pkg/xcerrors"
	"github.com/honeybbq/xorgconf/pkg/xorgconf"
)

// PlainTextRenderer 将 xorg AST 渲染为 X server 期望的纯文本格式。
type PlainTextRenderer struct{}

func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// Render 实现 renderer.Renderer。空文档返回 ErrEmptyDocument 信号；
// 缺必填字段的 section 默认让整次渲染失败（KindIncomplete），
// opts.SkipIncomplete 可改为丢弃该 section。
func (r *PlainTextRenderer) Render(ctx context.Context, doc *ast.Document, opts xorgconf.RenderOptions) (*xorgconf.Bundle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if doc == nil {
		return nil, xcerrors.New(xcerrors.KindInternal, fmt.Errorf("xorg document is nil"))
	}

	sections := doc.All()
	if len(sections) == 0 {
		return nil, xcerrors.New(xcerrors.KindRender, xcerrors.ErrEmptyDocument)
	}

	var b strings.Builder
	if opts.GenerationTag != "" {
		fmt.Fprintf(&b, "# %s\n\n", opts.GenerationTag)
	}

	rendered := 0
	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := section.Validate(); err != nil {
			if opts.SkipIncomplete {
				continue
			}
			return nil, err
		}

		// 块之间恰好一个空行，由 Document 层负责，不属于 section 本身
		if rendered > 0 {
			b.WriteString("\n")
		}
		renderSection(&b, section)
		rendered++
	}

	if rendered == 0 {
		return nil, xcerrors.New(xcerrors.KindRender, xcerrors.ErrEmptyDocument)
	}

	bundle := xorgconf.NewBundle("xorg", "xorg")
	bundle.Packages = append(bundle.Packages, xorgconf.Package{
		Name:    "xorg.conf",
		Content: []byte(b.String()),
	})
	return bundle, nil
}

// renderSection 是所有 variant 共用的渲染骨架：
// tag 行、variant 条目、Option 存储、自定义行、EndSection。
func renderSection(b *strings.Builder, section ast.Section) {
	fmt.Fprintf(b, "Section %q\n", string(section.Tag()))

	for _, entry := range section.Entries() {
		writeEntry(b, entry)
	}

	store := section.Options()
	for _, name := range store.Names() {
		value, ok := store.Get(name)
		if !ok {
			continue
		}
		writeOption(b, name, value)
	}

	for _, line := range section.CustomLines() {
		fmt.Fprintf(b, "  %s\n", line)
	}

	b.WriteString("EndSection\n")
}

// writeEntry 输出一个结构化条目。absent 与空标量整行省略；
// 序列一元素一行；布尔写字面量 true/false；其余标量（含整数）加引号。
func writeEntry(b *strings.Builder, entry ast.Entry) {
	switch entry.Value.Kind() {
	case ast.KindList:
		for _, element := range entry.Value.AsList() {
			fmt.Fprintf(b, "  %s %q\n", entry.Name, element)
		}
	case ast.KindBool:
		fmt.Fprintf(b, "  %s %q\n", entry.Name, formatBool(entry.Value.AsBool()))
	case ast.KindInt:
		fmt.Fprintf(b, "  %s %q\n", entry.Name, strconv.FormatInt(entry.Value.AsInt(), 10))
	case ast.KindString:
		if entry.Value.AsString() == "" {
			return
		}
		fmt.Fprintf(b, "  %s %q\n", entry.Name, entry.Value.AsString())
	}
}

// writeOption 输出一个 Option 行。整数保持裸数字；
// 空标量是无值标志（只有名字）；序列一元素一行。
func writeOption(b *strings.Builder, name string, value ast.Value) {
	switch value.Kind() {
	case ast.KindList:
		for _, element := range value.AsList() {
			fmt.Fprintf(b, "  Option %q %q\n", name, element)
		}
	case ast.KindBool:
		fmt.Fprintf(b, "  Option %q %q\n", name, formatBool(value.AsBool()))
	case ast.KindInt:
		fmt.Fprintf(b, "  Option %q %s\n", name, strconv.FormatInt(value.AsInt(), 10))
	case ast.KindString:
		if value.AsString() == "" {
			fmt.Fprintf(b, "  Option %q\n", name)
			return
		}
		fmt.Fprintf(b, "  Option %q %q\n", name, value.AsString())
	}
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
