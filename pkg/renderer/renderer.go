package renderer

import (
	"context"

	"github.com/honeybbq/xorgconf/pkg/xorgconf"
)

// Renderer 定义文本渲染接口，使用泛型约束文档类型。
type Renderer[T any] interface {
	Render(ctx context.Context, doc T, opts xorgconf.RenderOptions) (*xorgconf.Bundle, error)
}

// Parser 将配置文本解析成领域文档。
type Parser[T any] interface {
	Parse(ctx context.Context, bundle *xorgconf.Bundle, opts xorgconf.ParseOptions) (T, error)
}
