package xorg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specYAML = `
dri:
  group: video
  mode: "0666"
devices:
  - identifier: device1
    driver: modesetting
    screen: 4
monitors:
  - identifier: monitor1
    primary: true
screens:
  - identifier: screen1
    device: device1
    monitor: monitor1
    default_depth: 24
`

const specTOML = `
[dri]
group = "video"
mode = "0666"

[[devices]]
identifier = "device1"
driver = "modesetting"
screen = 4

[[monitors]]
identifier = "monitor1"
primary = true

[[screens]]
identifier = "screen1"
device = "device1"
monitor = "monitor1"
default_depth = 24
`

const specJSON = `{
  "dri": {"group": "video", "mode": "0666"},
  "devices": [{"identifier": "device1", "driver": "modesetting", "screen": 4}],
  "monitors": [{"identifier": "monitor1", "primary": true}],
  "screens": [{"identifier": "screen1", "device": "device1", "monitor": "monitor1", "default_depth": 24}]
}`

func TestDecodeFormatEquivalence(t *testing.T) {
	fromYAML, err := Decode([]byte(specYAML), FormatYAML)
	require.NoError(t, err)
	fromTOML, err := Decode([]byte(specTOML), FormatTOML)
	require.NoError(t, err)
	fromJSON, err := Decode([]byte(specJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, fromYAML, fromJSON)

	require.Len(t, fromYAML.Devices, 1)
	device := fromYAML.Devices[0]
	assert.Equal(t, "device1", device.Identifier)
	require.NotNil(t, device.Screen)
	assert.Equal(t, int64(4), *device.Screen)

	require.Len(t, fromYAML.Monitors, 1)
	require.NotNil(t, fromYAML.Monitors[0].Primary)
	assert.True(t, *fromYAML.Monitors[0].Primary)

	require.NotNil(t, fromYAML.DRI)
	assert.Equal(t, "0666", fromYAML.DRI.Mode)
}

func TestDecodeOptionsAndCustomLines(t *testing.T) {
	input := `
monitors:
  - identifier: monitor1
    options:
      Rotate: left
      Ignore:
    custom_lines:
      - '# managed by fleetd'
`
	spec, err := Decode([]byte(input), FormatYAML)
	require.NoError(t, err)
	require.Len(t, spec.Monitors, 1)

	monitor := spec.Monitors[0]
	assert.Equal(t, "left", monitor.Options["Rotate"])
	ignore, ok := monitor.Options["Ignore"]
	assert.True(t, ok)
	assert.Nil(t, ignore)
	assert.Equal(t, []string{"# managed by fleetd"}, monitor.CustomLines)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := Decode([]byte("{not json"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("\t- broken"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("x"), Format("ini"))
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"fleet.yaml", FormatYAML},
		{"fleet.yml", FormatYAML},
		{"host.toml", FormatTOML},
		{"host.json", FormatJSON},
		{"-", FormatYAML},
		{"noext", FormatYAML},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.path), tt.path)
	}
}
