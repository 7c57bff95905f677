package xorg

import (
	"fmt"

	"github.com/honeybbq/xorgconf/pkg/xcerrors"
)

// Tag 是 xorg.conf 的 section 名称。集合是封闭的，由目标格式决定。
type Tag string

const (
	TagDevice       Tag = "Device"
	TagMonitor      Tag = "Monitor"
	TagScreen       Tag = "Screen"
	TagServerLayout Tag = "ServerLayout"
	TagInputDevice  Tag = "InputDevice"
	TagInputClass   Tag = "InputClass"
	TagFiles        Tag = "Files"
	TagModule       Tag = "Module"
	TagDRI          Tag = "DRI"
	TagServerFlags  Tag = "ServerFlags"
)

// Entry 表示 variant 自定义的结构化键值行（区别于通用 Option）。
type Entry struct {
	Name  string
	Value Value
}

// Section 是所有配置块实现的多态接口。
// 渲染骨架对所有 variant 一致：tag 行、Entries、Options、自定义行、EndSection。
type Section interface {
	// Tag 返回块名称常量。
	Tag() Tag
	// Entries 按 variant 定义的顺序返回结构化条目；absent 值在渲染时整行省略。
	Entries() []Entry
	// Validate 检查必填字段；缺失时返回 KindIncomplete 错误。
	Validate() error
	// Options 返回可直接写入的 Option 存储。
	Options() *OptionStore
	// CustomLines 返回按加入顺序排列的自由格式行。
	CustomLines() []string
}

// Identified 由携带 Identifier 的 section 实现。
// Files/Module/DRI/ServerFlags 没有标识符，按标识符查找时永远不会命中它们。
type Identified interface {
	Section
	Identifier() string
}

// Base 持有 Option 存储与自定义行，内嵌进每个 variant。
type Base struct {
	options OptionStore
	custom  []string
}

// AddOption 存入一个 Option；absent 值是静默 no-op。
func (b *Base) AddOption(name string, v Value) {
	b.options.Set(name, v)
}

// Options 实现 Section 接口。
func (b *Base) Options() *OptionStore {
	return &b.options
}

// AddCustomLine 追加一条按原样输出的行。
func (b *Base) AddCustomLine(line string) {
	if line == "" {
		return
	}
	b.custom = append(b.custom, line)
}

// CustomLines 实现 Section 接口。
func (b *Base) CustomLines() []string {
	return b.custom
}

// requireIdentifier 是各 variant 共享的必填校验。
func requireIdentifier(tag Tag, identifier string) error {
	if identifier == "" {
		return xcerrors.New(xcerrors.KindIncomplete, fmt.Errorf("%s section has no identifier", tag))
	}
	return nil
}
