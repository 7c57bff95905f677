package xorg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybbq/xorgconf/pkg/xcerrors"
)

func requireIncomplete(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var xerr *xcerrors.Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, xcerrors.KindIncomplete, xerr.Kind)
}

func TestRequiredFieldPolicy(t *testing.T) {
	t.Run("DeviceNeedsIdentifier", func(t *testing.T) {
		requireIncomplete(t, NewDevice("", "intel").Validate())
		assert.NoError(t, NewDevice("gpu", "").Validate())
	})

	t.Run("MonitorNeedsIdentifier", func(t *testing.T) {
		requireIncomplete(t, NewMonitor("").Validate())
		assert.NoError(t, NewMonitor("monitor1").Validate())
	})

	t.Run("ScreenNeedsBothReferences", func(t *testing.T) {
		device := NewDevice("gpu", "intel")
		monitor := NewMonitor("monitor1")

		requireIncomplete(t, NewScreen("screen1", nil, monitor).Validate())
		requireIncomplete(t, NewScreen("screen1", device, nil).Validate())
		requireIncomplete(t, NewScreen("", device, monitor).Validate())
		assert.NoError(t, NewScreen("screen1", device, monitor).Validate())
	})

	t.Run("LayoutNeedsAtLeastOneScreen", func(t *testing.T) {
		layout := NewServerLayout("layout1")
		requireIncomplete(t, layout.Validate())

		layout.AddScreen(NewScreen("screen1", NewDevice("gpu", ""), NewMonitor("m")))
		assert.NoError(t, layout.Validate())
	})

	t.Run("InputSectionsNeedIdentifier", func(t *testing.T) {
		requireIncomplete(t, NewInputDevice("", "libinput").Validate())
		requireIncomplete(t, NewInputClass("").Validate())
	})

	t.Run("TaglikeSectionsAlwaysRenderable", func(t *testing.T) {
		assert.NoError(t, NewFiles().Validate())
		assert.NoError(t, NewModule().Validate())
		assert.NoError(t, NewDRI().Validate())
		assert.NoError(t, NewServerFlags().Validate())
	})
}

// entryValue 返回命名条目的值，absent 表示不存在。
func entryValue(t *testing.T, section Section, name string) (Value, bool) {
	t.Helper()
	for _, entry := range section.Entries() {
		if entry.Name == name {
			return entry.Value, true
		}
	}
	return Value{}, false
}

func TestCrossReferenceEntries(t *testing.T) {
	device := NewDevice("device1", "driverA")
	monitor := NewMonitor("monitor1")
	screen := NewScreen("screen1", device, monitor)

	v, ok := entryValue(t, screen, "Device")
	require.True(t, ok)
	assert.Equal(t, "device1", v.AsString())

	v, ok = entryValue(t, screen, "Monitor")
	require.True(t, ok)
	assert.Equal(t, "monitor1", v.AsString())
}

func TestServerLayoutEntries(t *testing.T) {
	device := NewDevice("gpu", "")
	monitor := NewMonitor("m")
	layout := NewServerLayout("layout1")
	layout.AddScreen(NewScreen("screen1", device, monitor))
	layout.AddScreen(NewScreen("screen2", device, monitor))
	layout.AddInputDevice(NewInputDevice("kbd0", "libinput"))

	v, ok := entryValue(t, layout, "Screen")
	require.True(t, ok)
	assert.Equal(t, []string{"screen1", "screen2"}, v.AsList())

	v, ok = entryValue(t, layout, "InputDevice")
	require.True(t, ok)
	assert.Equal(t, []string{"kbd0"}, v.AsList())
}

func TestInputSettingsSharedCapability(t *testing.T) {
	t.Run("InputDevice", func(t *testing.T) {
		input := NewInputDevice("mouse0", "libinput")
		input.SetAccelSpeed(0.5)
		input.SetAccelerationProfile(-1)
		input.SetTransformationMatrix([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})

		v, ok := input.Options().Get("AccelSpeed")
		require.True(t, ok)
		assert.Equal(t, "0.5", v.AsString())

		v, ok = input.Options().Get("AccelerationProfile")
		require.True(t, ok)
		assert.Equal(t, int64(-1), v.AsInt())

		v, ok = input.Options().Get("TransformationMatrix")
		require.True(t, ok)
		assert.Equal(t, "1 0 0 0 1 0 0 0 1", v.AsString())
	})

	t.Run("InputClassSupersetsInputDevice", func(t *testing.T) {
		class := NewInputClass("touchpad defaults")
		class.SetDriver("libinput")
		class.SetMatchIsTouchpad(true)
		class.SetAccelSpeed(0.3)
		class.SetIgnore()

		v, ok := entryValue(t, class, "MatchIsTouchpad")
		require.True(t, ok)
		assert.True(t, v.AsBool())

		_, ok = class.Options().Get("AccelSpeed")
		assert.True(t, ok)

		ignore, ok := class.Options().Get("Ignore")
		require.True(t, ok)
		assert.Equal(t, "", ignore.AsString())
	})
}

func TestVariantEntrySkeletons(t *testing.T) {
	t.Run("FilesSequences", func(t *testing.T) {
		files := NewFiles()
		files.AddFontPath("/usr/share/fonts/misc")
		files.AddFontPath("/usr/share/fonts/TTF")
		files.SetXkbDir("/usr/share/X11/xkb")

		v, ok := entryValue(t, files, "FontPath")
		require.True(t, ok)
		assert.Len(t, v.AsList(), 2)
	})

	t.Run("ModuleSequences", func(t *testing.T) {
		module := NewModule()
		module.Load("glx")
		module.Disable("dri")

		v, ok := entryValue(t, module, "Load")
		require.True(t, ok)
		assert.Equal(t, []string{"glx"}, v.AsList())
	})

	t.Run("ServerFlagsHasNoEntries", func(t *testing.T) {
		flags := NewServerFlags()
		flags.SetDontZap(true)
		assert.Empty(t, flags.Entries())
		assert.Equal(t, 1, flags.Options().Len())
	})

	t.Run("DeviceOptionalEntriesAbsentByDefault", func(t *testing.T) {
		device := NewDevice("gpu", "intel")
		v, ok := entryValue(t, device, "Screen")
		require.True(t, ok)
		assert.True(t, v.IsAbsent())
	})
}
