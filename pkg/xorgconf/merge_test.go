package xorgconf

import (
	"testing"
)

func TestDeepMerge_SimpleValues(t *testing.T) {
	base := map[string]any{
		"group": "video",
		"mode":  "0666",
	}
	override := map[string]any{
		"mode": "0660",
	}

	result := deepMerge(base, override, DefaultIdentifiers)

	if result["mode"] != "0660" {
		t.Errorf("mode should be overridden, got %v", result["mode"])
	}
	if result["group"] != "video" {
		t.Errorf("group should be preserved, got %v", result["group"])
	}
}

func TestDeepMerge_NestedDict(t *testing.T) {
	base := map[string]any{
		"dri": map[string]any{
			"group": "video",
			"mode":  "0666",
		},
	}
	override := map[string]any{
		"dri": map[string]any{
			"mode": "0660",
		},
	}

	result := deepMerge(base, override, DefaultIdentifiers)

	dri := result["dri"].(map[string]any)
	if dri["mode"] != "0660" {
		t.Errorf("nested mode should be overridden")
	}
	if dri["group"] != "video" {
		t.Errorf("group should be preserved")
	}
}

func TestDeepMerge_IdentifierArrayMerge(t *testing.T) {
	base := map[string]any{
		"devices": []any{
			map[string]any{"identifier": "device1", "driver": "intel"},
		},
	}
	override := map[string]any{
		"devices": []any{
			map[string]any{"identifier": "device1", "driver": "modesetting"},
			map[string]any{"identifier": "device2", "driver": "nvidia"},
		},
	}

	result := deepMerge(base, override, DefaultIdentifiers)

	devices := result["devices"].([]any)
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices after merge, got %d", len(devices))
	}
	first := devices[0].(map[string]any)
	if first["identifier"] != "device1" || first["driver"] != "modesetting" {
		t.Errorf("device1 should be merged in place, got %v", first)
	}
	second := devices[1].(map[string]any)
	if second["identifier"] != "device2" {
		t.Errorf("device2 should be appended, got %v", second)
	}
}

func TestDeepMerge_DuplicateElementsSkipped(t *testing.T) {
	base := map[string]any{
		"module": map[string]any{
			"load": []any{"glx"},
		},
	}
	override := map[string]any{
		"module": map[string]any{
			"load": []any{"glx", "dri2"},
		},
	}

	result := deepMerge(base, override, DefaultIdentifiers)

	load := result["module"].(map[string]any)["load"].([]any)
	if len(load) != 2 {
		t.Fatalf("duplicate list element should be skipped, got %v", load)
	}
}

func TestMergeMaps_LayerOrder(t *testing.T) {
	layers := []map[string]any{
		{"dri": map[string]any{"group": "video"}},
		{"dri": map[string]any{"group": "render"}},
		{"server_flags": map[string]any{"dont_zap": true}},
	}

	result, err := MergeMaps(layers, nil)
	if err != nil {
		t.Fatalf("MergeMaps failed: %v", err)
	}

	dri := result["dri"].(map[string]any)
	if dri["group"] != "render" {
		t.Errorf("later layer should win, got %v", dri["group"])
	}
	if _, ok := result["server_flags"]; !ok {
		t.Errorf("new top-level key should be added")
	}
}

func TestMergeMaps_NoLayers(t *testing.T) {
	if _, err := MergeMaps(nil, nil); err == nil {
		t.Fatal("expected error for empty layer list")
	}
}

func TestMergeMaps_DoesNotMutateInput(t *testing.T) {
	base := map[string]any{
		"devices": []any{
			map[string]any{"identifier": "device1", "driver": "intel"},
		},
	}
	override := map[string]any{
		"devices": []any{
			map[string]any{"identifier": "device1", "driver": "modesetting"},
		},
	}

	if _, err := MergeMaps([]map[string]any{base, override}, nil); err != nil {
		t.Fatalf("MergeMaps failed: %v", err)
	}

	original := base["devices"].([]any)[0].(map[string]any)
	if original["driver"] != "intel" {
		t.Errorf("base layer should stay untouched, got %v", original["driver"])
	}
}
