package xorg

// Files 对应 Files 配置块，无标识符，永远可渲染。
type Files struct {
	Base
	fontPaths   []string
	modulePaths []string
	xkbDir      string
}

// NewFiles 创建 Files。
func NewFiles() *Files { return &Files{} }

// AddFontPath 追加一条字体路径。
func (f *Files) AddFontPath(path string) {
	if path == "" {
		return
	}
	f.fontPaths = append(f.fontPaths, path)
}

// AddModulePath 追加一条模块搜索路径。
func (f *Files) AddModulePath(path string) {
	if path == "" {
		return
	}
	f.modulePaths = append(f.modulePaths, path)
}

// SetXkbDir 设置 XKB 数据目录。
func (f *Files) SetXkbDir(dir string) { f.xkbDir = dir }

// Tag 实现 Section 接口。
func (f *Files) Tag() Tag { return TagFiles }

// Validate 实现 Section 接口：没有必填字段。
func (f *Files) Validate() error { return nil }

// Entries 实现 Section 接口。
func (f *Files) Entries() []Entry {
	return []Entry{
		{Name: "FontPath", Value: List(f.fontPaths...)},
		{Name: "ModulePath", Value: List(f.modulePaths...)},
		{Name: "XkbDir", Value: String(f.xkbDir)},
	}
}

// Module 对应 Module 配置块。
type Module struct {
	Base
	loads    []string
	disables []string
}

// NewModule 创建 Module。
func NewModule() *Module { return &Module{} }

// Load 声明要加载的服务器模块。
func (m *Module) Load(name string) {
	if name == "" {
		return
	}
	m.loads = append(m.loads, name)
}

// Disable 声明要禁用的服务器模块。
func (m *Module) Disable(name string) {
	if name == "" {
		return
	}
	m.disables = append(m.disables, name)
}

// Tag 实现 Section 接口。
func (m *Module) Tag() Tag { return TagModule }

// Validate 实现 Section 接口：没有必填字段。
func (m *Module) Validate() error { return nil }

// Entries 实现 Section 接口。
func (m *Module) Entries() []Entry {
	return []Entry{
		{Name: "Load", Value: List(m.loads...)},
		{Name: "Disable", Value: List(m.disables...)},
	}
}

// DRI 对应 DRI 配置块。
type DRI struct {
	Base
	group string
	mode  string
}

// NewDRI 创建 DRI。
func NewDRI() *DRI { return &DRI{} }

// SetGroup 设置允许直接渲染的用户组。
func (d *DRI) SetGroup(group string) { d.group = group }

// SetMode 设置设备权限，按八进制文本传入（如 "0666"）以保留前导零。
func (d *DRI) SetMode(mode string) { d.mode = mode }

// Tag 实现 Section 接口。
func (d *DRI) Tag() Tag { return TagDRI }

// Validate 实现 Section 接口：没有必填字段。
func (d *DRI) Validate() error { return nil }

// Entries 实现 Section 接口。
func (d *DRI) Entries() []Entry {
	return []Entry{
		{Name: "Group", Value: String(d.group)},
		{Name: "Mode", Value: String(d.mode)},
	}
}

// ServerFlags 对应 ServerFlags 配置块，只有 Option 与自定义行。
type ServerFlags struct {
	Base
}

// NewServerFlags 创建 ServerFlags。
func NewServerFlags() *ServerFlags { return &ServerFlags{} }

// SetAutoAddDevices 控制热插拔设备是否自动加入。
func (s *ServerFlags) SetAutoAddDevices(enable bool) { s.AddOption("AutoAddDevices", Bool(enable)) }

// SetAutoEnableDevices 控制热插拔设备是否自动启用。
func (s *ServerFlags) SetAutoEnableDevices(enable bool) { s.AddOption("AutoEnableDevices", Bool(enable)) }

// SetDontZap 禁用 Ctrl+Alt+Backspace 退出。
func (s *ServerFlags) SetDontZap(dontZap bool) { s.AddOption("DontZap", Bool(dontZap)) }

// SetBlankTime 设置屏幕空白的分钟数（裸数字 Option）。
func (s *ServerFlags) SetBlankTime(minutes int64) { s.AddOption("BlankTime", Int(minutes)) }

// SetStandbyTime 设置 DPMS standby 的分钟数。
func (s *ServerFlags) SetStandbyTime(minutes int64) { s.AddOption("StandbyTime", Int(minutes)) }

// Tag 实现 Section 接口。
func (s *ServerFlags) Tag() Tag { return TagServerFlags }

// Validate 实现 Section 接口：没有必填字段。
func (s *ServerFlags) Validate() error { return nil }

// Entries 实现 Section 接口：ServerFlags 只携带 Option。
func (s *ServerFlags) Entries() []Entry { return nil }
