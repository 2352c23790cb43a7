package categories

import (
	"reflect"
	"testing"
)

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple list", "Cibo\nBollette\nAuto", []string{"Cibo", "Bollette", "Auto"}},
		{"trims and drops blanks", "  Cibo  \n\n Auto \n", []string{"Cibo", "Auto"}},
		{"dedupes keeping first", "Cibo\nAuto\nCibo", []string{"Cibo", "Auto"}},
		{"empty input", "   \n  \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitNames(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitNames(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMergeCounts(t *testing.T) {
	old := []*Category{
		{UserID: 1, Name: "Cibo", TimesUsed: 5},
		{UserID: 1, Name: "Auto", TimesUsed: 2},
	}

	merged := mergeCounts(old, []string{"Cibo", "Svago"}, 1)

	if len(merged) != 2 {
		t.Fatalf("len = %d, want 2", len(merged))
	}
	if merged[0].Name != "Cibo" || merged[0].TimesUsed != 5 {
		t.Errorf("surviving name lost its counter: %+v", merged[0])
	}
	if merged[1].Name != "Svago" || merged[1].TimesUsed != 0 {
		t.Errorf("new name should start at zero: %+v", merged[1])
	}
	// "Auto" is gone, counter included.
	for _, c := range merged {
		if c.Name == "Auto" {
			t.Error("dropped name survived the merge")
		}
	}
}

func TestDefaultNames(t *testing.T) {
	if len(DefaultNames) != 11 {
		t.Fatalf("default set has %d names, want 11", len(DefaultNames))
	}
	seen := make(map[string]struct{}, len(DefaultNames))
	for _, name := range DefaultNames {
		if name == "" {
			t.Error("empty default name")
		}
		if _, ok := seen[name]; ok {
			t.Errorf("duplicate default name %q", name)
		}
		seen[name] = struct{}{}
	}
}
