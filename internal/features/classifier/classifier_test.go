package classifier

import (
	"context"
	"testing"
)

type fakeHistory struct {
	entries []HistoryEntry
}

func (f *fakeHistory) DescriptionHistory(_ context.Context, _ int64) ([]HistoryEntry, error) {
	return f.entries, nil
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name    string
		history []HistoryEntry
		input   string
		want    string
	}{
		{
			name:    "empty history",
			history: nil,
			input:   "kebab da ciccio",
			want:    "",
		},
		{
			name: "exact match",
			history: []HistoryEntry{
				{Description: "kebab da ciccio", Category: "🍔 Cibo"},
			},
			input: "kebab da ciccio",
			want:  "🍔 Cibo",
		},
		{
			name: "near match above threshold",
			history: []HistoryEntry{
				{Description: "kebab da ciccio", Category: "🍔 Cibo"},
			},
			input: "kebab da ciccia",
			want:  "🍔 Cibo",
		},
		{
			name: "unrelated description",
			history: []HistoryEntry{
				{Description: "bolletta della luce", Category: "📨 Bollette"},
			},
			input: "kebab da ciccio",
			want:  "",
		},
		{
			name: "most recent occurrence wins",
			history: []HistoryEntry{
				{Description: "kebab da ciccio", Category: "🕹️ Svago"},
				{Description: "kebab da ciccio", Category: "🍔 Cibo"},
			},
			input: "kebab da ciccio",
			want:  "🕹️ Svago",
		},
		{
			name: "uncategorized entry still wins when most recent",
			history: []HistoryEntry{
				{Description: "kebab da ciccio", Category: ""},
				{Description: "kebab da ciccio", Category: "🍔 Cibo"},
			},
			input: "kebab da ciccio",
			want:  "",
		},
		{
			name: "empty descriptions skipped",
			history: []HistoryEntry{
				{Description: "", Category: "🍔 Cibo"},
				{Description: "kebab da ciccio", Category: "🍔 Cibo"},
			},
			input: "kebab da ciccio",
			want:  "🍔 Cibo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(&fakeHistory{entries: tt.history})
			got, err := s.Suggest(context.Background(), 1, tt.input)
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
