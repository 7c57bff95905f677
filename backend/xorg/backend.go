package xorg

import (
	"context"
	"errors"
	"fmt"
	"os"

	domain "github.com/honeybbq/xorgconf/domain/xorg"
	ast "github.com/honeybbq/xorgconf/pkg/ast/xorg"
	"github.com/honeybbq/xorgconf/pkg/renderer"
	"github.com/honeybbq/xorgconf/pkg/xcerrors"
	"github.com/honeybbq/xorgconf/pkg/xorgconf"
)

// Backend 把领域模型、AST 与渲染器串成一条生成管线。
type Backend struct {
	renderer renderer.Renderer[*ast.Document]
	parser   renderer.Parser[*ast.Document]
}

// New 构造 Backend。
func New(r renderer.Renderer[*ast.Document], p renderer.Parser[*ast.Document]) *Backend {
	return &Backend{
		renderer: r,
		parser:   p,
	}
}

// Name 返回后端标识。
func (b *Backend) Name() string {
	return "xorg"
}

// Render 渲染一个已组装好的 Document。
func (b *Backend) Render(ctx context.Context, doc *ast.Document, opts xorgconf.RenderOptions) (*xorgconf.Bundle, error) {
	return b.renderer.Render(ctx, doc, opts)
}

// RenderSpec 从声明式 Spec 出发完成整条管线：Spec → AST → 文本。
func (b *Backend) RenderSpec(ctx context.Context, spec *domain.Spec, opts xorgconf.RenderOptions) (*xorgconf.Bundle, error) {
	cfg, err := domain.FromSpec(spec)
	if err != nil {
		return nil, err
	}
	doc, err := cfg.ToAST()
	if err != nil {
		return nil, err
	}
	return b.renderer.Render(ctx, doc, opts)
}

// Parse 是反向转换入口；当前解析器返回未实现错误。
func (b *Backend) Parse(ctx context.Context, bundle *xorgconf.Bundle, opts xorgconf.ParseOptions) (*ast.Document, error) {
	return b.parser.Parse(ctx, bundle, opts)
}

// WriteFile 渲染一次并把结果写到 path。
// 空文档跳过写入并返回 written=false——"没有内容" 不等于写入失败，
// 也绝不落一个空文件；真正的 I/O 失败带 KindIO 原样上抛。
func (b *Backend) WriteFile(ctx context.Context, doc *ast.Document, path string, opts xorgconf.RenderOptions) (bool, error) {
	bundle, err := b.Render(ctx, doc, opts)
	if err != nil {
		if errors.Is(err, xcerrors.ErrEmptyDocument) {
			return false, nil
		}
		return false, err
	}
	if len(bundle.Packages) == 0 {
		return false, nil
	}
	if err := os.WriteFile(path, bundle.Packages[0].Content, 0o644); err != nil {
		return false, xcerrors.New(xcerrors.KindIO, fmt.Errorf("write %q: %w", path, err))
	}
	return true, nil
}
