package xorg

// Device 对应显卡的 Device 配置块。
type Device struct {
	Base
	identifier string
	driver     string
	vendorName string
	boardName  string
	chipset    string
	busID      string
	screen     *int64
	videoRAM   *int64
}

// NewDevice 创建 Device；identifier 是渲染必填项，driver 可为空。
func NewDevice(identifier, driver string) *Device {
	return &Device{identifier: identifier, driver: driver}
}

// Identifier 实现 Identified 接口。
func (d *Device) Identifier() string { return d.identifier }

func (d *Device) SetDriver(driver string) { d.driver = driver }

func (d *Device) SetVendorName(name string) { d.vendorName = name }

func (d *Device) SetBoardName(name string) { d.boardName = name }

func (d *Device) SetChipset(chipset string) { d.chipset = chipset }

func (d *Device) SetBusID(busID string) { d.busID = busID }

// SetScreen 指定多头配置下该 Device 服务的 screen 序号。
func (d *Device) SetScreen(n int64) { d.screen = &n }

// SetVideoRAM 指定显存容量（KB）。
func (d *Device) SetVideoRAM(kb int64) { d.videoRAM = &kb }

// Tag 实现 Section 接口。
func (d *Device) Tag() Tag { return TagDevice }

// Validate 实现 Section 接口。
func (d *Device) Validate() error {
	return requireIdentifier(TagDevice, d.identifier)
}

// Entries 实现 Section 接口。
func (d *Device) Entries() []Entry {
	return []Entry{
		{Name: "Identifier", Value: String(d.identifier)},
		{Name: "Driver", Value: String(d.driver)},
		{Name: "VendorName", Value: String(d.vendorName)},
		{Name: "BoardName", Value: String(d.boardName)},
		{Name: "Chipset", Value: String(d.chipset)},
		{Name: "BusID", Value: String(d.busID)},
		{Name: "Screen", Value: IntPtr(d.screen)},
		{Name: "VideoRam", Value: IntPtr(d.videoRAM)},
	}
}
