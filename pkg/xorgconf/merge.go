package xorgconf

import (
	"encoding/json"
	"fmt"
)

// DefaultIdentifiers defines the field names used to match array elements
// during merge. When merging arrays of section descriptions, elements are
// considered "the same" if they have matching values for any of these fields
// (checked in order). Section lists in a declarative xorg spec key their
// elements by "identifier".
var DefaultIdentifiers = []string{"identifier", "name"}

// MergeMaps merges multiple decoded spec layers with later layers overriding
// earlier ones. This is the template mechanism: a base spec describes the
// fleet-wide configuration, later layers carry the per-host overrides.
//
// Merge rules:
//   - Simple values (string, number, bool): later value overwrites earlier
//   - Objects (maps): recursively merged, with later keys overriding earlier
//   - Arrays: merged using identifier matching (see DefaultIdentifiers)
func MergeMaps(layers []map[string]any, identifiers []string) (map[string]any, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers to merge")
	}
	if identifiers == nil {
		identifiers = DefaultIdentifiers
	}

	result := make(map[string]any)
	for _, layer := range layers {
		result = deepMerge(result, layer, identifiers)
	}
	return result, nil
}

// deepMerge performs a deep merge of two maps, with override taking
// precedence over base.
func deepMerge(base, override map[string]any, identifiers []string) map[string]any {
	if base == nil {
		return deepCopy(override)
	}
	if override == nil {
		return deepCopy(base)
	}

	result := deepCopy(base)

	for key, overrideVal := range override {
		baseVal, exists := result[key]
		if !exists {
			result[key] = deepCopyValue(overrideVal)
			continue
		}

		switch overrideVal := overrideVal.(type) {
		case map[string]any:
			if baseMap, ok := baseVal.(map[string]any); ok {
				result[key] = deepMerge(baseMap, overrideVal, identifiers)
			} else {
				result[key] = deepCopyValue(overrideVal)
			}
		case []any:
			if baseSlice, ok := baseVal.([]any); ok {
				result[key] = mergeSlices(baseSlice, overrideVal, identifiers)
			} else {
				result[key] = deepCopyValue(overrideVal)
			}
		default:
			result[key] = deepCopyValue(overrideVal)
		}
	}

	return result
}

// mergeSlices merges two slices. Elements that are maps carrying one of the
// identifier fields are merged with the base element of the same identifier;
// everything else is appended. Exact duplicates are skipped.
//
// Example with identifiers=["identifier"]:
//
//	base:     [{"identifier": "device1", "driver": "intel"}]
//	override: [{"identifier": "device1", "driver": "modesetting"}, {"identifier": "device2", ...}]
//	result:   [{"identifier": "device1", "driver": "modesetting"}, {"identifier": "device2", ...}]
func mergeSlices(base, override []any, identifiers []string) []any {
	if len(base) == 0 {
		return deepCopySlice(override)
	}
	if len(override) == 0 {
		return deepCopySlice(base)
	}

	// 建立 base 数组的索引（按标识符）
	baseIndex := make(map[any]int)
	for i, el := range base {
		if m, ok := el.(map[string]any); ok {
			if id := extractIdentifier(m, identifiers); id != nil {
				baseIndex[id] = i
			}
		}
	}

	result := deepCopySlice(base)

	for _, overrideEl := range override {
		// 完全相同的元素跳过
		if isDuplicate(result, overrideEl) {
			continue
		}

		// 字典元素按标识符匹配后合并
		if m, ok := overrideEl.(map[string]any); ok {
			id := extractIdentifier(m, identifiers)
			if id != nil {
				if idx, found := baseIndex[id]; found {
					if baseMap, ok := result[idx].(map[string]any); ok {
						result[idx] = deepMerge(baseMap, m, identifiers)
						continue
					}
				}
			}
		}

		result = append(result, deepCopyValue(overrideEl))
	}

	return result
}

// extractIdentifier 从 map 中提取标识符的值。
// 按 identifiers 的顺序查找，返回第一个找到的值。
func extractIdentifier(m map[string]any, identifiers []string) any {
	for _, key := range identifiers {
		if val, ok := m[key]; ok && val != nil && val != "" {
			return val
		}
	}
	return nil
}

// isDuplicate checks if an element already exists in a slice (exact match).
// Uses JSON serialization for deep equality comparison.
func isDuplicate(slice []any, el any) bool {
	elJSON, err := json.Marshal(el)
	if err != nil {
		return false
	}
	for _, item := range slice {
		itemJSON, err := json.Marshal(item)
		if err != nil {
			continue
		}
		if string(elJSON) == string(itemJSON) {
			return true
		}
	}
	return false
}

func deepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = deepCopyValue(v)
	}
	return result
}

func deepCopySlice(s []any) []any {
	if s == nil {
		return nil
	}
	result := make([]any, len(s))
	for i, v := range s {
		result[i] = deepCopyValue(v)
	}
	return result
}

// deepCopyValue recursively copies maps and slices; simple types are value
// types and returned as-is.
func deepCopyValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return deepCopy(v)
	case []any:
		return deepCopySlice(v)
	default:
		return v
	}
}
