package xorg

import (
	"context"
	"fmt"

	ast "github.com/honeybbq/xorgconf/pkg/ast/xorg"
	"github.com/honeybbq/xorgconf/pkg/xcerrors"
	"github.com/honeybbq/xorgconf/pkg/xorgconf"
)

// NotImplementedParser 用于尚未实现解析能力的阶段。
// 生成是单向的：模型 → 文本；反向解析不在支持范围内。
type NotImplementedParser struct{}

func NewNotImplementedParser() *NotImplementedParser {
	return &NotImplementedParser{}
}

func (p *NotImplementedParser) Parse(ctx context.Context, bundle *xorgconf.Bundle, opts xorgconf.ParseOptions) (*ast.Document, error) {
	return nil, xcerrors.New(xcerrors.KindParse, fmt.Errorf("xorg parser not implemented: %w", xcerrors.ErrNotImplemented))
}
