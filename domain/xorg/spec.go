package xorg

// Spec 是 xorg.conf 的声明式描述，可由 YAML/TOML/JSON 解码，
// 也可以由多层 map 合并后再解码（模板 + 主机覆盖）。
// 字段为 nil/空时对应的 section 不会生成。
type Spec struct {
	ServerFlags  *ServerFlagsSpec  `mapstructure:"server_flags"`
	Files        *FilesSpec        `mapstructure:"files"`
	Module       *ModuleSpec       `mapstructure:"module"`
	DRI          *DRISpec          `mapstructure:"dri"`
	Monitors     []MonitorSpec     `mapstructure:"monitors"`
	Devices      []DeviceSpec      `mapstructure:"devices"`
	Screens      []ScreenSpec      `mapstructure:"screens"`
	InputDevices []InputDeviceSpec `mapstructure:"input_devices"`
	InputClasses []InputClassSpec  `mapstructure:"input_classes"`
	Layouts      []LayoutSpec      `mapstructure:"layouts"`
}

// SectionSpec 携带所有 section 共有的通用 Option 与自定义行。
type SectionSpec struct {
	Options     map[string]any `mapstructure:"options"`
	CustomLines []string       `mapstructure:"custom_lines"`
}

// DeviceSpec 描述一个 Device 块。
type DeviceSpec struct {
	SectionSpec `mapstructure:",squash"`

	Identifier string `mapstructure:"identifier"`
	Driver     string `mapstructure:"driver"`
	VendorName string `mapstructure:"vendor_name"`
	BoardName  string `mapstructure:"board_name"`
	Chipset    string `mapstructure:"chipset"`
	BusID      string `mapstructure:"bus_id"`
	Screen     *int64 `mapstructure:"screen"`
	VideoRAM   *int64 `mapstructure:"video_ram"`
}

// MonitorSpec 描述一个 Monitor 块。
type MonitorSpec struct {
	SectionSpec `mapstructure:",squash"`

	Identifier    string   `mapstructure:"identifier"`
	VendorName    string   `mapstructure:"vendor_name"`
	ModelName     string   `mapstructure:"model_name"`
	HorizSync     string   `mapstructure:"horiz_sync"`
	VertRefresh   string   `mapstructure:"vert_refresh"`
	DisplaySize   []int64  `mapstructure:"display_size"`
	Gamma         string   `mapstructure:"gamma"`
	UseModes      string   `mapstructure:"use_modes"`
	ModeLines     []string `mapstructure:"mode_lines"`
	Primary       *bool    `mapstructure:"primary"`
	Enable        *bool    `mapstructure:"enable"`
	Rotate        string   `mapstructure:"rotate"`
	PreferredMode string   `mapstructure:"preferred_mode"`
}

// ScreenSpec 描述一个 Screen 块；Device/Monitor 按标识符引用。
type ScreenSpec struct {
	SectionSpec `mapstructure:",squash"`

	Identifier   string `mapstructure:"identifier"`
	Device       string `mapstructure:"device"`
	Monitor      string `mapstructure:"monitor"`
	DefaultDepth *int64 `mapstructure:"default_depth"`
}

// InputDeviceSpec 描述一个 InputDevice 块。
type InputDeviceSpec struct {
	SectionSpec `mapstructure:",squash"`

	Identifier           string    `mapstructure:"identifier"`
	Driver               string    `mapstructure:"driver"`
	DevicePath           string    `mapstructure:"device_path"`
	CorePointer          bool      `mapstructure:"core_pointer"`
	CoreKeyboard         bool      `mapstructure:"core_keyboard"`
	SendCoreEvents       *bool     `mapstructure:"send_core_events"`
	AccelerationProfile  *int64    `mapstructure:"acceleration_profile"`
	AccelSpeed           *float64  `mapstructure:"accel_speed"`
	TransformationMatrix []float64 `mapstructure:"transformation_matrix"`
}

// InputClassSpec 描述一个 InputClass 块。
type InputClassSpec struct {
	SectionSpec `mapstructure:",squash"`

	Identifier           string    `mapstructure:"identifier"`
	Driver               string    `mapstructure:"driver"`
	MatchProduct         string    `mapstructure:"match_product"`
	MatchVendor          string    `mapstructure:"match_vendor"`
	MatchDevicePath      string    `mapstructure:"match_device_path"`
	MatchOS              string    `mapstructure:"match_os"`
	MatchPnPID           string    `mapstructure:"match_pnp_id"`
	MatchUSBID           string    `mapstructure:"match_usb_id"`
	MatchDriver          string    `mapstructure:"match_driver"`
	MatchTag             string    `mapstructure:"match_tag"`
	MatchLayout          string    `mapstructure:"match_layout"`
	MatchIsKeyboard      *bool     `mapstructure:"match_is_keyboard"`
	MatchIsPointer       *bool     `mapstructure:"match_is_pointer"`
	MatchIsTouchpad      *bool     `mapstructure:"match_is_touchpad"`
	MatchIsTouchscreen   *bool     `mapstructure:"match_is_touchscreen"`
	MatchIsJoystick      *bool     `mapstructure:"match_is_joystick"`
	MatchIsTablet        *bool     `mapstructure:"match_is_tablet"`
	Ignore               bool      `mapstructure:"ignore"`
	AccelerationProfile  *int64    `mapstructure:"acceleration_profile"`
	AccelSpeed           *float64  `mapstructure:"accel_speed"`
	TransformationMatrix []float64 `mapstructure:"transformation_matrix"`
}

// LayoutSpec 描述一个 ServerLayout 块；Screen/InputDevice 按标识符引用。
type LayoutSpec struct {
	SectionSpec `mapstructure:",squash"`

	Identifier   string   `mapstructure:"identifier"`
	Screens      []string `mapstructure:"screens"`
	InputDevices []string `mapstructure:"input_devices"`
}

// FilesSpec 描述 Files 块。
type FilesSpec struct {
	SectionSpec `mapstructure:",squash"`

	FontPaths   []string `mapstructure:"font_paths"`
	ModulePaths []string `mapstructure:"module_paths"`
	XkbDir      string   `mapstructure:"xkb_dir"`
}

// ModuleSpec 描述 Module 块。
type ModuleSpec struct {
	SectionSpec `mapstructure:",squash"`

	Load    []string `mapstructure:"load"`
	Disable []string `mapstructure:"disable"`
}

// DRISpec 描述 DRI 块。
type DRISpec struct {
	SectionSpec `mapstructure:",squash"`

	Group string `mapstructure:"group"`
	Mode  string `mapstructure:"mode"`
}

// ServerFlagsSpec 描述 ServerFlags 块。
type ServerFlagsSpec struct {
	SectionSpec `mapstructure:",squash"`

	AutoAddDevices    *bool  `mapstructure:"auto_add_devices"`
	AutoEnableDevices *bool  `mapstructure:"auto_enable_devices"`
	DontZap           *bool  `mapstructure:"dont_zap"`
	BlankTime         *int64 `mapstructure:"blank_time"`
	StandbyTime       *int64 `mapstructure:"standby_time"`
}
