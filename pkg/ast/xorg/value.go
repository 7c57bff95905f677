package xorg

import (
	"strconv"
	"strings"
)

// ValueKind 区分条目与 Option 值的渲染类型。
type ValueKind int

const (
	// KindAbsent 表示值未设置，渲染时整行省略。
	KindAbsent ValueKind = iota
	// KindString 表示普通标量，渲染时加双引号；空串的 Option 渲染为无值标志。
	KindString
	// KindBool 渲染为字面量 "true"/"false"。
	KindBool
	// KindInt 在条目中加引号，在 Option 中保持裸数字。
	KindInt
	// KindList 渲染为同键多行。
	KindList
)

// Value 是条目与 Option 共用的渲染值。零值即 absent。
type Value struct {
	kind ValueKind
	str  string
	b    bool
	i    int64
	list []string
}

// String 构造标量值。空串不是 absent：作为 Option 时渲染为无值标志。
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool 构造布尔值。
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int 构造整数值。
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float 构造浮点标量；以最短精确十进制形式写出（0.5 而不是 0.500000）。
func Float(f float64) Value {
	return String(strconv.FormatFloat(f, 'g', -1, 64))
}

// List 构造有序序列值，过滤空元素。
func List(items ...string) Value {
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			filtered = append(filtered, item)
		}
	}
	return Value{kind: KindList, list: filtered}
}

// StringPtr 由指针构造：nil 视为 absent。
func StringPtr(p *string) Value {
	if p == nil {
		return Value{}
	}
	return String(*p)
}

// BoolPtr 由指针构造：nil 视为 absent。
func BoolPtr(p *bool) Value {
	if p == nil {
		return Value{}
	}
	return Bool(*p)
}

// IntPtr 由指针构造：nil 视为 absent。
func IntPtr(p *int64) Value {
	if p == nil {
		return Value{}
	}
	return Int(*p)
}

// FloatPtr 由指针构造：nil 视为 absent。
func FloatPtr(p *float64) Value {
	if p == nil {
		return Value{}
	}
	return Float(*p)
}

// Floats 将浮点序列拼成空格分隔的标量（TransformationMatrix 等）。
func Floats(values ...float64) Value {
	if len(values) == 0 {
		return Value{}
	}
	parts := make([]string, len(values))
	for i, f := range values {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return String(strings.Join(parts, " "))
}

// Kind 返回值类型。
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value was never set.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsString 返回标量文本（仅 KindString 有意义）。
func (v Value) AsString() string { return v.str }

// AsBool 返回布尔值（仅 KindBool 有意义）。
func (v Value) AsBool() bool { return v.b }

// AsInt 返回整数值（仅 KindInt 有意义）。
func (v Value) AsInt() int64 { return v.i }

// AsList 返回序列元素（仅 KindList 有意义），调用方不得修改。
func (v Value) AsList() []string { return v.list }

// OptionStore 是插入有序的 Option 映射：同键后写覆盖先写，保留首次插入位置。
type OptionStore struct {
	names  []string
	values map[string]Value
}

// Set 存入一个 Option。absent 值是静默 no-op，
// 让调用方可以对每个可选字段无条件调用而无需判空。
func (s *OptionStore) Set(name string, v Value) {
	if name == "" || v.IsAbsent() {
		return
	}
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = v
}

// Get 按名称取值。
func (s *OptionStore) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names 返回插入顺序的键列表副本。
func (s *OptionStore) Names() []string {
	if len(s.names) == 0 {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len 返回已存 Option 数量。
func (s *OptionStore) Len() int { return len(s.names) }
