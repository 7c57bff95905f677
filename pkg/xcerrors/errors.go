package xcerrors

import (
	"errors"
	"fmt"
)

// Kind identifies the high level class of an error surfaced by xorgconf.
type Kind string

const (
	// KindValidation indicates caller supplied configuration data failed validation.
	KindValidation Kind = "validation"
	// KindIncomplete 表示 section 缺少必填字段，无法渲染。
	KindIncomplete Kind = "incomplete"
	// KindRender indicates 文本渲染失败。
	KindRender Kind = "render"
	// KindParse indicates native configuration无法解析。
	KindParse Kind = "parse"
	// KindIO 表示写入目标文件失败。
	KindIO Kind = "io"
	// KindUnsupported 表示暂不支持的功能。
	KindUnsupported Kind = "unsupported"
	// KindInternal 表示未知或内部错误。
	KindInternal Kind = "internal"
)

// Error 包装底层错误并附加 Kind，方便调用方根据类型处理。
type Error struct {
	Kind Kind
	Err  error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap 允许 errors.Is/As 访问底层错误。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New 创建指定 Kind 的错误。
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf 返回错误携带的 Kind；非 xcerrors 错误返回空串。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

var (
	// ErrEmptyDocument 表示文档不含任何 section，没有可输出内容。
	// 这是 "nothing to do" 信号，不代表渲染失败。
	ErrEmptyDocument = errors.New("xorgconf: empty document")
	// ErrNotImplemented 统一指示功能尚未实现。
	ErrNotImplemented = errors.New("xorgconf: not implemented")
)
