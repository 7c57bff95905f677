package xorg

import "fmt"

// Monitor 对应 Monitor 配置块。
type Monitor struct {
	Base
	identifier  string
	vendorName  string
	modelName   string
	horizSync   string
	vertRefresh string
	displaySize string
	gamma       string
	useModes    string
	modeLines   []string
}

// NewMonitor 创建 Monitor。
func NewMonitor(identifier string) *Monitor {
	return &Monitor{identifier: identifier}
}

// Identifier 实现 Identified 接口。
func (m *Monitor) Identifier() string { return m.identifier }

func (m *Monitor) SetVendorName(name string) { m.vendorName = name }
func (m *Monitor) SetModelName(name string) { m.modelName = name }

// SetHorizSync 设置水平同步范围，如 "30-80"。
func (m *Monitor) SetHorizSync(rangeSpec string) { m.horizSync = rangeSpec }

// SetVertRefresh 设置垂直刷新范围，如 "56-75"。
func (m *Monitor) SetVertRefresh(rangeSpec string) { m.vertRefresh = rangeSpec }

// SetDisplaySize 设置可视面积（毫米）。
func (m *Monitor) SetDisplaySize(width, height int64) {
	m.displaySize = fmt.Sprintf("%d %d", width, height)
}

// SetGamma 设置 gamma 校正声明，如 "1.0" 或 "1.0 1.0 1.0"。
func (m *Monitor) SetGamma(gamma string) { m.gamma = gamma }

// SetUseModes 引用外部 Modes section 的标识符。
func (m *Monitor) SetUseModes(identifier string) { m.useModes = identifier }

// AddModeLine 追加一条 ModeLine 声明；同键多行按加入顺序输出。
func (m *Monitor) AddModeLine(modeLine string) {
	if modeLine == "" {
		return
	}
	m.modeLines = append(m.modeLines, modeLine)
}

// SetPrimary 标记该显示器为主输出。
func (m *Monitor) SetPrimary(primary bool) { m.AddOption("Primary", Bool(primary)) }

// SetEnable 控制服务器是否启用该输出。
func (m *Monitor) SetEnable(enable bool) { m.AddOption("Enable", Bool(enable)) }

// SetRotate 设置旋转方向（normal/left/right/inverted）。
func (m *Monitor) SetRotate(direction string) { m.AddOption("Rotate", String(direction)) }

// SetPreferredMode 指定优先使用的模式名。
func (m *Monitor) SetPreferredMode(mode string) { m.AddOption("PreferredMode", String(mode)) }

// SetDPMS 控制电源管理。
func (m *Monitor) SetDPMS(enable bool) { m.AddOption("DPMS", Bool(enable)) }

// SetPosition 相对另一输出定位，如 "1920 0"。
func (m *Monitor) SetPosition(position string) { m.AddOption("Position", String(position)) }

// Tag 实现 Section 接口。
func (m *Monitor) Tag() Tag { return TagMonitor }

// Validate 实现 Section 接口。
func (m *Monitor) Validate() error {
	return requireIdentifier(TagMonitor, m.identifier)
}

// Entries 实现 Section 接口。
func (m *Monitor) Entries() []Entry {
	return []Entry{
		{Name: "Identifier", Value: String(m.identifier)},
		{Name: "VendorName", Value: String(m.vendorName)},
		{Name: "ModelName", Value: String(m.modelName)},
		{Name: "HorizSync", Value: String(m.horizSync)},
		{Name: "VertRefresh", Value: String(m.vertRefresh)},
		{Name: "DisplaySize", Value: String(m.displaySize)},
		{Name: "Gamma", Value: String(m.gamma)},
		{Name: "UseModes", Value: String(m.useModes)},
		{Name: "ModeLine", Value: List(m.modeLines...)},
	}
}
