package xorg

// InputSettings 提供 InputDevice 与 InputClass 共享的指针加速与坐标变换能力。
// 所有设置都落到宿主 section 的 Option 存储里。
type InputSettings struct {
	store *OptionStore
}

func (s *InputSettings) bind(store *OptionStore) { s.store = store }

// SetAccelerationProfile 选择加速曲线（-1 为禁用）。
func (s *InputSettings) SetAccelerationProfile(profile int64) {
	s.store.Set("AccelerationProfile", Int(profile))
}

// SetAccelerationNumerator 设置加速系数的分子。
func (s *InputSettings) SetAccelerationNumerator(numerator int64) {
	s.store.Set("AccelerationNumerator", Int(numerator))
}

// SetAccelerationDenominator 设置加速系数的分母。
func (s *InputSettings) SetAccelerationDenominator(denominator int64) {
	s.store.Set("AccelerationDenominator", Int(denominator))
}

// SetAccelerationThreshold 设置加速生效的速度阈值。
func (s *InputSettings) SetAccelerationThreshold(threshold int64) {
	s.store.Set("AccelerationThreshold", Int(threshold))
}

// SetAccelSpeed 设置 libinput 风格的加速速度，范围 [-1, 1]。
func (s *InputSettings) SetAccelSpeed(speed float64) {
	s.store.Set("AccelSpeed", Float(speed))
}

// SetConstantDeceleration 设置恒定减速系数。
func (s *InputSettings) SetConstantDeceleration(factor float64) {
	s.store.Set("ConstantDeceleration", Float(factor))
}

// SetAdaptiveDeceleration 设置自适应减速系数。
func (s *InputSettings) SetAdaptiveDeceleration(factor float64) {
	s.store.Set("AdaptiveDeceleration", Float(factor))
}

// SetTransformationMatrix 设置 3x3 坐标变换矩阵（按行展开）。
func (s *InputSettings) SetTransformationMatrix(matrix [9]float64) {
	s.store.Set("TransformationMatrix", Floats(matrix[:]...))
}

// inputEntries 是 InputDevice 与 InputClass 共享的条目构造例程，
// extra 携带 InputClass 专属的匹配谓词条目。
func inputEntries(identifier, driver string, extra []Entry) []Entry {
	entries := []Entry{
		{Name: "Identifier", Value: String(identifier)},
		{Name: "Driver", Value: String(driver)},
	}
	return append(entries, extra...)
}

// InputDevice 对应 InputDevice 配置块。
type InputDevice struct {
	Base
	InputSettings
	identifier string
	driver     string
}

// NewInputDevice 创建 InputDevice。
func NewInputDevice(identifier, driver string) *InputDevice {
	d := &InputDevice{identifier: identifier, driver: driver}
	d.InputSettings.bind(d.Base.Options())
	return d
}

// Identifier 实现 Identified 接口。
func (d *InputDevice) Identifier() string { return d.identifier }

func (d *InputDevice) SetDriver(driver string) { d.driver = driver }

// SetDevicePath 指定事件设备节点，如 "/dev/input/event3"。
func (d *InputDevice) SetDevicePath(path string) { d.AddOption("Device", String(path)) }

// SetCorePointer 声明该设备为核心指针（无值标志 Option）。
func (d *InputDevice) SetCorePointer() { d.AddOption("CorePointer", String("")) }

// SetCoreKeyboard 声明该设备为核心键盘（无值标志 Option）。
func (d *InputDevice) SetCoreKeyboard() { d.AddOption("CoreKeyboard", String("")) }

// SetSendCoreEvents 控制事件是否注入核心指针。
func (d *InputDevice) SetSendCoreEvents(send bool) { d.AddOption("SendCoreEvents", Bool(send)) }

// Tag 实现 Section 接口。
func (d *InputDevice) Tag() Tag { return TagInputDevice }

// Validate 实现 Section 接口。
func (d *InputDevice) Validate() error {
	return requireIdentifier(TagInputDevice, d.identifier)
}

// Entries 实现 Section 接口。
func (d *InputDevice) Entries() []Entry {
	return inputEntries(d.identifier, d.driver, nil)
}
