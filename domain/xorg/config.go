package xorg

import (
	"fmt"
	"sort"

	ast "github.com/honeybbq/xorgconf/pkg/ast/xorg"
	"github.com/honeybbq/xorgconf/pkg/xcerrors"
)

// Config 表示 xorg 领域模型。
type Config struct {
	Spec *Spec
}

// FromSpec 构造领域模型。
func FromSpec(spec *Spec) (*Config, error) {
	if spec == nil {
		return nil, xcerrors.New(xcerrors.KindValidation, fmt.Errorf("spec is nil"))
	}
	return &Config{Spec: spec}, nil
}

// FromAST 是反向转换的占位；解析方向不在支持范围内。
func FromAST(doc *ast.Document) (*Config, error) {
	if doc == nil {
		return nil, xcerrors.New(xcerrors.KindParse, fmt.Errorf("document is nil"))
	}
	return nil, xcerrors.ErrNotImplemented
}

// ToAST 把声明式 Spec 组装成可渲染的 Document。
// 注册顺序固定：ServerFlags、Files、Module、DRI、Monitor、Device、
// Screen、InputDevice、InputClass、ServerLayout——引用目标先于引用方。
func (c *Config) ToAST() (*ast.Document, error) {
	if c == nil || c.Spec == nil {
		return nil, xcerrors.New(xcerrors.KindInternal, fmt.Errorf("config is nil"))
	}

	doc := ast.NewDocument()

	if flags := buildServerFlags(c.Spec.ServerFlags); flags != nil {
		doc.AddSection(flags)
	}
	if files := buildFiles(c.Spec.Files); files != nil {
		doc.AddSection(files)
	}
	if module := buildModule(c.Spec.Module); module != nil {
		doc.AddSection(module)
	}
	if dri := buildDRI(c.Spec.DRI); dri != nil {
		doc.AddSection(dri)
	}

	monitors := make(map[string]*ast.Monitor)
	for i := range c.Spec.Monitors {
		monitor := buildMonitor(&c.Spec.Monitors[i])
		monitors[monitor.Identifier()] = monitor
		doc.AddSection(monitor)
	}

	devices := make(map[string]*ast.Device)
	for i := range c.Spec.Devices {
		device := buildDevice(&c.Spec.Devices[i])
		devices[device.Identifier()] = device
		doc.AddSection(device)
	}

	screens := make(map[string]*ast.Screen)
	for i := range c.Spec.Screens {
		screen, err := buildScreen(&c.Spec.Screens[i], devices, monitors)
		if err != nil {
			return nil, err
		}
		screens[screen.Identifier()] = screen
		doc.AddSection(screen)
	}

	inputs := make(map[string]*ast.InputDevice)
	for i := range c.Spec.InputDevices {
		input := buildInputDevice(&c.Spec.InputDevices[i])
		inputs[input.Identifier()] = input
		doc.AddSection(input)
	}

	for i := range c.Spec.InputClasses {
		doc.AddSection(buildInputClass(&c.Spec.InputClasses[i]))
	}

	for i := range c.Spec.Layouts {
		layout, err := buildLayout(&c.Spec.Layouts[i], screens, inputs)
		if err != nil {
			return nil, err
		}
		doc.AddSection(layout)
	}

	if doc.Len() == 0 {
		return nil, xcerrors.New(xcerrors.KindRender, xcerrors.ErrEmptyDocument)
	}
	return doc, nil
}

func buildDevice(spec *DeviceSpec) *ast.Device {
	device := ast.NewDevice(spec.Identifier, spec.Driver)
	device.SetVendorName(spec.VendorName)
	device.SetBoardName(spec.BoardName)
	device.SetChipset(spec.Chipset)
	device.SetBusID(spec.BusID)
	if spec.Screen != nil {
		device.SetScreen(*spec.Screen)
	}
	if spec.VideoRAM != nil {
		device.SetVideoRAM(*spec.VideoRAM)
	}
	applyCommon(device, spec.SectionSpec)
	return device
}

func buildMonitor(spec *MonitorSpec) *ast.Monitor {
	monitor := ast.NewMonitor(spec.Identifier)
	monitor.SetVendorName(spec.VendorName)
	monitor.SetModelName(spec.ModelName)
	monitor.SetHorizSync(spec.HorizSync)
	monitor.SetVertRefresh(spec.VertRefresh)
	if len(spec.DisplaySize) == 2 {
		monitor.SetDisplaySize(spec.DisplaySize[0], spec.DisplaySize[1])
	}
	monitor.SetGamma(spec.Gamma)
	monitor.SetUseModes(spec.UseModes)
	for _, modeLine := range spec.ModeLines {
		monitor.AddModeLine(modeLine)
	}
	if spec.Primary != nil {
		monitor.SetPrimary(*spec.Primary)
	}
	if spec.Enable != nil {
		monitor.SetEnable(*spec.Enable)
	}
	if spec.Rotate != "" {
		monitor.SetRotate(spec.Rotate)
	}
	if spec.PreferredMode != "" {
		monitor.SetPreferredMode(spec.PreferredMode)
	}
	applyCommon(monitor, spec.SectionSpec)
	return monitor
}

func buildScreen(spec *ScreenSpec, devices map[string]*ast.Device, monitors map[string]*ast.Monitor) (*ast.Screen, error) {
	var device *ast.Device
	if spec.Device != "" {
		found, ok := devices[spec.Device]
		if !ok {
			return nil, xcerrors.New(xcerrors.KindValidation,
				fmt.Errorf("screen %q references unknown device %q", spec.Identifier, spec.Device))
		}
		device = found
	}
	var monitor *ast.Monitor
	if spec.Monitor != "" {
		found, ok := monitors[spec.Monitor]
		if !ok {
			return nil, xcerrors.New(xcerrors.KindValidation,
				fmt.Errorf("screen %q references unknown monitor %q", spec.Identifier, spec.Monitor))
		}
		monitor = found
	}

	screen := ast.NewScreen(spec.Identifier, device, monitor)
	if spec.DefaultDepth != nil {
		screen.SetDefaultDepth(*spec.DefaultDepth)
	}
	applyCommon(screen, spec.SectionSpec)
	return screen, nil
}

func buildInputDevice(spec *InputDeviceSpec) *ast.InputDevice {
	input := ast.NewInputDevice(spec.Identifier, spec.Driver)
	if spec.DevicePath != "" {
		input.SetDevicePath(spec.DevicePath)
	}
	if spec.CorePointer {
		input.SetCorePointer()
	}
	if spec.CoreKeyboard {
		input.SetCoreKeyboard()
	}
	if spec.SendCoreEvents != nil {
		input.SetSendCoreEvents(*spec.SendCoreEvents)
	}
	applyInputSettings(&input.InputSettings, spec.AccelerationProfile, spec.AccelSpeed, spec.TransformationMatrix)
	applyCommon(input, spec.SectionSpec)
	return input
}

func buildInputClass(spec *InputClassSpec) *ast.InputClass {
	class := ast.NewInputClass(spec.Identifier)
	class.SetDriver(spec.Driver)
	class.SetMatchProduct(spec.MatchProduct)
	class.SetMatchVendor(spec.MatchVendor)
	class.SetMatchDevicePath(spec.MatchDevicePath)
	class.SetMatchOS(spec.MatchOS)
	class.SetMatchPnPID(spec.MatchPnPID)
	class.SetMatchUSBID(spec.MatchUSBID)
	class.SetMatchDriver(spec.MatchDriver)
	class.SetMatchTag(spec.MatchTag)
	class.SetMatchLayout(spec.MatchLayout)
	if spec.MatchIsKeyboard != nil {
		class.SetMatchIsKeyboard(*spec.MatchIsKeyboard)
	}
	if spec.MatchIsPointer != nil {
		class.SetMatchIsPointer(*spec.MatchIsPointer)
	}
	if spec.MatchIsTouchpad != nil {
		class.SetMatchIsTouchpad(*spec.MatchIsTouchpad)
	}
	if spec.MatchIsTouchscreen != nil {
		class.SetMatchIsTouchscreen(*spec.MatchIsTouchscreen)
	}
	if spec.MatchIsJoystick != nil {
		class.SetMatchIsJoystick(*spec.MatchIsJoystick)
	}
	if spec.MatchIsTablet != nil {
		class.SetMatchIsTablet(*spec.MatchIsTablet)
	}
	if spec.Ignore {
		class.SetIgnore()
	}
	applyInputSettings(&class.InputSettings, spec.AccelerationProfile, spec.AccelSpeed, spec.TransformationMatrix)
	applyCommon(class, spec.SectionSpec)
	return class
}

func buildLayout(spec *LayoutSpec, screens map[string]*ast.Screen, inputs map[string]*ast.InputDevice) (*ast.ServerLayout, error) {
	layout := ast.NewServerLayout(spec.Identifier)
	for _, id := range spec.Screens {
		screen, ok := screens[id]
		if !ok {
			return nil, xcerrors.New(xcerrors.KindValidation,
				fmt.Errorf("layout %q references unknown screen %q", spec.Identifier, id))
		}
		layout.AddScreen(screen)
	}
	for _, id := range spec.InputDevices {
		input, ok := inputs[id]
		if !ok {
			return nil, xcerrors.New(xcerrors.KindValidation,
				fmt.Errorf("layout %q references unknown input device %q", spec.Identifier, id))
		}
		layout.AddInputDevice(input)
	}
	applyCommon(layout, spec.SectionSpec)
	return layout, nil
}

func buildFiles(spec *FilesSpec) *ast.Files {
	if spec == nil {
		return nil
	}
	files := ast.NewFiles()
	for _, path := range spec.FontPaths {
		files.AddFontPath(path)
	}
	for _, path := range spec.ModulePaths {
		files.AddModulePath(path)
	}
	files.SetXkbDir(spec.XkbDir)
	applyCommon(files, spec.SectionSpec)
	return files
}

func buildModule(spec *ModuleSpec) *ast.Module {
	if spec == nil {
		return nil
	}
	module := ast.NewModule()
	for _, name := range spec.Load {
		module.Load(name)
	}
	for _, name := range spec.Disable {
		module.Disable(name)
	}
	applyCommon(module, spec.SectionSpec)
	return module
}

func buildDRI(spec *DRISpec) *ast.DRI {
	if spec == nil {
		return nil
	}
	dri := ast.NewDRI()
	dri.SetGroup(spec.Group)
	dri.SetMode(spec.Mode)
	applyCommon(dri, spec.SectionSpec)
	return dri
}

func buildServerFlags(spec *ServerFlagsSpec) *ast.ServerFlags {
	if spec == nil {
		return nil
	}
	flags := ast.NewServerFlags()
	if spec.AutoAddDevices != nil {
		flags.SetAutoAddDevices(*spec.AutoAddDevices)
	}
	if spec.AutoEnableDevices != nil {
		flags.SetAutoEnableDevices(*spec.AutoEnableDevices)
	}
	if spec.DontZap != nil {
		flags.SetDontZap(*spec.DontZap)
	}
	if spec.BlankTime != nil {
		flags.SetBlankTime(*spec.BlankTime)
	}
	if spec.StandbyTime != nil {
		flags.SetStandbyTime(*spec.StandbyTime)
	}
	applyCommon(flags, spec.SectionSpec)
	return flags
}

func applyInputSettings(settings *ast.InputSettings, profile *int64, speed *float64, matrix []float64) {
	if profile != nil {
		settings.SetAccelerationProfile(*profile)
	}
	if speed != nil {
		settings.SetAccelSpeed(*speed)
	}
	if len(matrix) == 9 {
		var m [9]float64
		copy(m[:], matrix)
		settings.SetTransformationMatrix(m)
	}
}

// sectionTarget 是 applyCommon 需要的最小写入面，所有 variant 借内嵌 Base 满足。
type sectionTarget interface {
	AddOption(name string, v ast.Value)
	AddCustomLine(line string)
}

// applyCommon 写入通用 Option 与自定义行。
// map 无序，这里按键排序保证重复渲染字节级一致。
func applyCommon(target sectionTarget, spec SectionSpec) {
	for _, name := range sortedKeys(spec.Options) {
		target.AddOption(name, convertOptionValue(spec.Options[name]))
	}
	for _, line := range spec.CustomLines {
		target.AddCustomLine(line)
	}
}

// convertOptionValue 把解码出的动态值转成渲染值。
// nil 与空串都落成无值标志；整浮点（JSON 数字）折回整数，
// 保证三种输入格式产出相同文本。
func convertOptionValue(raw any) ast.Value {
	switch v := raw.(type) {
	case nil:
		return ast.String("")
	case string:
		return ast.String(v)
	case bool:
		return ast.Bool(v)
	case int:
		return ast.Int(int64(v))
	case int64:
		return ast.Int(v)
	case float64:
		if v == float64(int64(v)) {
			return ast.Int(int64(v))
		}
		return ast.Float(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				items = append(items, s)
			}
		}
		return ast.List(items...)
	default:
		return ast.String(fmt.Sprint(v))
	}
}

func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
