package xorg

import (
	"fmt"

	"github.com/honeybbq/xorgconf/pkg/xcerrors"
)

// Screen 对应 Screen 配置块，按标识符弱引用 Device 与 Monitor。
// 引用只在渲染时读取对方的 Identifier，被引用的 section
// 仍须独立注册进 Document 才会出现在输出里。
type Screen struct {
	Base
	identifier   string
	device       *Device
	monitor      *Monitor
	defaultDepth *int64
}

// NewScreen 创建 Screen；device 与 monitor 引用是渲染必填项。
func NewScreen(identifier string, device *Device, monitor *Monitor) *Screen {
	return &Screen{identifier: identifier, device: device, monitor: monitor}
}

// Identifier 实现 Identified 接口。
func (s *Screen) Identifier() string { return s.identifier }

// Device 返回被引用的 Device，可能为 nil。
func (s *Screen) Device() *Device { return s.device }

// Monitor 返回被引用的 Monitor，可能为 nil。
func (s *Screen) Monitor() *Monitor { return s.monitor }

func (s *Screen) SetDevice(device *Device) { s.device = device }
func (s *Screen) SetMonitor(monitor *Monitor) { s.monitor = monitor }

// SetDefaultDepth 设置默认色深（位）。
func (s *Screen) SetDefaultDepth(depth int64) { s.defaultDepth = &depth }

// Tag 实现 Section 接口。
func (s *Screen) Tag() Tag { return TagScreen }

// Validate 实现 Section 接口：标识符与两个结构性引用都不可缺。
func (s *Screen) Validate() error {
	if err := requireIdentifier(TagScreen, s.identifier); err != nil {
		return err
	}
	if s.device == nil || s.device.Identifier() == "" {
		return xcerrors.New(xcerrors.KindIncomplete, fmt.Errorf("screen %q has no device reference", s.identifier))
	}
	if s.monitor == nil || s.monitor.Identifier() == "" {
		return xcerrors.New(xcerrors.KindIncomplete, fmt.Errorf("screen %q has no monitor reference", s.identifier))
	}
	return nil
}

// Entries 实现 Section 接口。引用条目输出的是对方的标识符，不嵌套对方的块。
func (s *Screen) Entries() []Entry {
	var device, monitor string
	if s.device != nil {
		device = s.device.Identifier()
	}
	if s.monitor != nil {
		monitor = s.monitor.Identifier()
	}
	return []Entry{
		{Name: "Identifier", Value: String(s.identifier)},
		{Name: "Device", Value: String(device)},
		{Name: "Monitor", Value: String(monitor)},
		{Name: "DefaultDepth", Value: IntPtr(s.defaultDepth)},
	}
}
