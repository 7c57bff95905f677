package xorg

import (
	"fmt"

	"github.com/honeybbq/xorgconf/pkg/xcerrors"
)

// ServerLayout 对应 ServerLayout 配置块，把 Screen 与 InputDevice 组合成一套布局。
type ServerLayout struct {
	Base
	identifier   string
	screens      []*Screen
	inputDevices []*InputDevice
}

// NewServerLayout 创建 ServerLayout；至少要 AddScreen 一次才可渲染。
func NewServerLayout(identifier string) *ServerLayout {
	return &ServerLayout{identifier: identifier}
}

// Identifier 实现 Identified 接口。
func (l *ServerLayout) Identifier() string { return l.identifier }

// AddScreen 追加一个 Screen 引用（按标识符输出）。
func (l *ServerLayout) AddScreen(screen *Screen) {
	if screen == nil {
		return
	}
	l.screens = append(l.screens, screen)
}

// AddInputDevice 追加一个 InputDevice 引用（按标识符输出）。
func (l *ServerLayout) AddInputDevice(device *InputDevice) {
	if device == nil {
		return
	}
	l.inputDevices = append(l.inputDevices, device)
}

// Screens 返回已加入的 Screen 引用。
func (l *ServerLayout) Screens() []*Screen { return l.screens }

// SetBlankTime 设置屏幕保护空白的分钟数。
func (l *ServerLayout) SetBlankTime(minutes int64) { l.AddOption("BlankTime", Int(minutes)) }

// SetStandbyTime 设置 DPMS standby 的分钟数。
func (l *ServerLayout) SetStandbyTime(minutes int64) { l.AddOption("StandbyTime", Int(minutes)) }

// SetSuspendTime 设置 DPMS suspend 的分钟数。
func (l *ServerLayout) SetSuspendTime(minutes int64) { l.AddOption("SuspendTime", Int(minutes)) }

// SetOffTime 设置 DPMS off 的分钟数。
func (l *ServerLayout) SetOffTime(minutes int64) { l.AddOption("OffTime", Int(minutes)) }

// Tag 实现 Section 接口。
func (l *ServerLayout) Tag() Tag { return TagServerLayout }

// Validate 实现 Section 接口。
func (l *ServerLayout) Validate() error {
	if err := requireIdentifier(TagServerLayout, l.identifier); err != nil {
		return err
	}
	if len(l.screens) == 0 {
		return xcerrors.New(xcerrors.KindIncomplete, fmt.Errorf("server layout %q has no screen reference", l.identifier))
	}
	return nil
}

// Entries 实现 Section 接口。
func (l *ServerLayout) Entries() []Entry {
	screenIDs := make([]string, 0, len(l.screens))
	for _, screen := range l.screens {
		screenIDs = append(screenIDs, screen.Identifier())
	}
	inputIDs := make([]string, 0, len(l.inputDevices))
	for _, device := range l.inputDevices {
		inputIDs = append(inputIDs, device.Identifier())
	}
	return []Entry{
		{Name: "Identifier", Value: String(l.identifier)},
		{Name: "Screen", Value: List(screenIDs...)},
		{Name: "InputDevice", Value: List(inputIDs...)},
	}
}
