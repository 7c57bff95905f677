package xorg

// InputClass 对应 InputClass 配置块：InputDevice 的能力超集，
// 在共享的加速/变换设置之上增加匹配谓词与 Ignore 标志。
type InputClass struct {
	Base
	InputSettings
	identifier string
	driver     string

	matchProduct    string
	matchVendor     string
	matchDevicePath string
	matchOS         string
	matchPnPID      string
	matchUSBID      string
	matchDriver     string
	matchTag        string
	matchLayout     string

	matchIsKeyboard    *bool
	matchIsPointer     *bool
	matchIsTouchpad    *bool
	matchIsTouchscreen *bool
	matchIsJoystick    *bool
	matchIsTablet      *bool
}

// NewInputClass 创建 InputClass。
func NewInputClass(identifier string) *InputClass {
	c := &InputClass{identifier: identifier}
	c.InputSettings.bind(c.Base.Options())
	return c
}

// Identifier 实现 Identified 接口。
func (c *InputClass) Identifier() string { return c.identifier }

func (c *InputClass) SetDriver(driver string) { c.driver = driver }

func (c *InputClass) SetMatchProduct(product string) { c.matchProduct = product }

func (c *InputClass) SetMatchVendor(vendor string) { c.matchVendor = vendor }

func (c *InputClass) SetMatchDevicePath(path string) { c.matchDevicePath = path }

func (c *InputClass) SetMatchOS(os string) { c.matchOS = os }

func (c *InputClass) SetMatchPnPID(id string) { c.matchPnPID = id }

func (c *InputClass) SetMatchUSBID(id string) { c.matchUSBID = id }

func (c *InputClass) SetMatchDriver(driver string) { c.matchDriver = driver }

func (c *InputClass) SetMatchTag(tag string) { c.matchTag = tag }

func (c *InputClass) SetMatchLayout(layout string) { c.matchLayout = layout }

func (c *InputClass) SetMatchIsKeyboard(match bool) { c.matchIsKeyboard = &match }

func (c *InputClass) SetMatchIsPointer(match bool) { c.matchIsPointer = &match }

func (c *InputClass) SetMatchIsTouchpad(match bool) { c.matchIsTouchpad = &match }

func (c *InputClass) SetMatchIsTouchscreen(match bool) { c.matchIsTouchscreen = &match }

func (c *InputClass) SetMatchIsJoystick(match bool) { c.matchIsJoystick = &match }

func (c *InputClass) SetMatchIsTablet(match bool) { c.matchIsTablet = &match }

// SetIgnore 让服务器跳过匹配到的设备（无值标志 Option）。
func (c *InputClass) SetIgnore() { c.AddOption("Ignore", String("")) }

// Tag 实现 Section 接口。
func (c *InputClass) Tag() Tag { return TagInputClass }

// Validate 实现 Section 接口。
func (c *InputClass) Validate() error {
	return requireIdentifier(TagInputClass, c.identifier)
}

// Entries 实现 Section 接口：共享条目例程加匹配谓词。
func (c *InputClass) Entries() []Entry {
	matches := []Entry{
		{Name: "MatchProduct", Value: String(c.matchProduct)},
		{Name: "MatchVendor", Value: String(c.matchVendor)},
		{Name: "MatchDevicePath", Value: String(c.matchDevicePath)},
		{Name: "MatchOS", Value: String(c.matchOS)},
		{Name: "MatchPnPID", Value: String(c.matchPnPID)},
		{Name: "MatchUSBID", Value: String(c.matchUSBID)},
		{Name: "MatchDriver", Value: String(c.matchDriver)},
		{Name: "MatchTag", Value: String(c.matchTag)},
		{Name: "MatchLayout", Value: String(c.matchLayout)},
		{Name: "MatchIsKeyboard", Value: BoolPtr(c.matchIsKeyboard)},
		{Name: "MatchIsPointer", Value: BoolPtr(c.matchIsPointer)},
		{Name: "MatchIsTouchpad", Value: BoolPtr(c.matchIsTouchpad)},
		{Name: "MatchIsTouchscreen", Value: BoolPtr(c.matchIsTouchscreen)},
		{Name: "MatchIsJoystick", Value: BoolPtr(c.matchIsJoystick)},
		{Name: "MatchIsTablet", Value: BoolPtr(c.matchIsTablet)},
	}
	return inputEntries(c.identifier, c.driver, matches)
}
