package reactor

import "testing"

func TestPresetsParseAndValidate(t *testing.T) {
	presets, err := Presets()
	if err != nil {
		t.Fatalf("loading presets: %v", err)
	}

	if len(presets) < 3 {
		t.Fatalf("expected at least 3 presets, got %d", len(presets))
	}

	for name, p := range presets {
		if err := p.Validate(); err != nil {
			t.Fatalf("preset %q does not validate: %v", name, err)
		}
	}
}

func TestDefaultPresetValues(t *testing.T) {
	presets, err := Presets()
	if err != nil {
		t.Fatalf("loading presets: %v", err)
	}

	if got := presets["default"]; got != defaultParams() {
		t.Fatalf("default preset mismatch: %#v", got)
	}
}
