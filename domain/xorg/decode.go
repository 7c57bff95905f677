package xorg

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/honeybbq/xorgconf/pkg/xcerrors"
)

// Format 标识声明式输入的编码格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// DetectFormat 按文件扩展名推断格式，默认 YAML。
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// UnmarshalMap 把一份输入解码成通用 map，供分层合并使用。
// JSON 走 protojson + structpb，与其他格式产出相同的 map 形态。
func UnmarshalMap(data []byte, format Format) (map[string]any, error) {
	switch format {
	case FormatYAML:
		var values map[string]any
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, xcerrors.New(xcerrors.KindValidation, fmt.Errorf("decode yaml: %w", err))
		}
		return values, nil
	case FormatTOML:
		var values map[string]any
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, xcerrors.New(xcerrors.KindValidation, fmt.Errorf("decode toml: %w", err))
		}
		return values, nil
	case FormatJSON:
		payload := &structpb.Struct{}
		if err := protojson.Unmarshal(data, payload); err != nil {
			return nil, xcerrors.New(xcerrors.KindValidation, fmt.Errorf("decode json: %w", err))
		}
		return payload.AsMap(), nil
	default:
		return nil, xcerrors.New(xcerrors.KindUnsupported, fmt.Errorf("unknown input format %q", format))
	}
}

// DecodeMap 把通用 map 解码成类型化 Spec。
// 弱类型转换让三种格式的数字表示（int/int64/float64）落到同一字段类型。
func DecodeMap(values map[string]any) (*Spec, error) {
	var spec Spec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, xcerrors.New(xcerrors.KindInternal, err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, xcerrors.New(xcerrors.KindValidation, fmt.Errorf("decode spec: %w", err))
	}
	return &spec, nil
}

// Decode 一步完成：解码输入并返回类型化 Spec。
func Decode(data []byte, format Format) (*Spec, error) {
	values, err := UnmarshalMap(data, format)
	if err != nil {
		return nil, err
	}
	return DecodeMap(values)
}
