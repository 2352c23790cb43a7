package session

import (
	"strings"
	"testing"
	"time"
)

func TestParseDraft(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		text     string
		ok       bool
		amount   float64
		desc     string
	}{
		{"amount and description", "12 kebab da ciccio", true, 12, "kebab da ciccio"},
		{"amount only", "42.5", true, 42.5, ""},
		{"negative amount", "-8 rimborso", true, -8, "rimborso"},
		{"extra whitespace", "  7   caffe  ", true, 7, "caffe"},
		{"not a number", "kebab 12", false, 0, ""},
		{"empty", "", false, 0, ""},
		{"blank", "   ", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDraft(tt.text, now)
			if ok != tt.ok {
				t.Fatalf("ParseDraft(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if !ok {
				return
			}
			if d.Amount != tt.amount {
				t.Errorf("amount = %v, want %v", d.Amount, tt.amount)
			}
			if d.Description != tt.desc {
				t.Errorf("description = %q, want %q", d.Description, tt.desc)
			}
			if d.Category != "" {
				t.Errorf("category = %q, want empty", d.Category)
			}
			if d.Timestamp != now.Unix() {
				t.Errorf("timestamp = %d, want %d", d.Timestamp, now.Unix())
			}
		})
	}
}

func TestDraftRenderOmitsUnsetLines(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	d, _ := ParseDraft("12", now)

	out := d.Render("€")
	if !strings.Contains(out, "<b>Data:</b> 2024-03-15") {
		t.Errorf("missing date line: %q", out)
	}
	if !strings.Contains(out, "<b>Importo:</b> 12 €") {
		t.Errorf("missing amount line: %q", out)
	}
	if strings.Contains(out, "Categoria") || strings.Contains(out, "Descrizione") {
		t.Errorf("unset lines rendered: %q", out)
	}

	d.Category = "🍔 Cibo"
	d.Description = "kebab"
	out = d.Render("")
	if !strings.Contains(out, "<b>Categoria:</b> 🍔 Cibo") {
		t.Errorf("missing category line: %q", out)
	}
	if !strings.Contains(out, "<b>Descrizione:</b> kebab") {
		t.Errorf("missing description line: %q", out)
	}
	if strings.Contains(out, "12 €") {
		t.Errorf("currency rendered when disabled: %q", out)
	}
}

func TestDraftSetAmount(t *testing.T) {
	d := &Draft{Amount: 10}

	if err := d.SetAmount("banana"); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
	if d.Amount != 10 {
		t.Errorf("amount changed on error: %v", d.Amount)
	}

	if err := d.SetAmount(" 25.5 "); err != nil {
		t.Fatalf("SetAmount: %v", err)
	}
	if d.Amount != 25.5 {
		t.Errorf("amount = %v, want 25.5", d.Amount)
	}
}

func TestDraftSetDate(t *testing.T) {
	d := &Draft{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	if err := d.SetDate("15-03-2024"); err == nil {
		t.Fatal("expected error for wrong date format")
	}
	if got := d.Date.Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("date changed on error: %s", got)
	}

	if err := d.SetDate("2024-03-15"); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if got := d.Date.Format("2006-01-02"); got != "2024-03-15" {
		t.Errorf("date = %s, want 2024-03-15", got)
	}
}

func TestEditsAreIdempotent(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	d, _ := ParseDraft("12 kebab", now)

	d.Category = "🍔 Cibo"
	d.Category = "🍔 Cibo"
	first := d.Render("€")
	d.Category = "🍔 Cibo"
	if second := d.Render("€"); second != first {
		t.Errorf("re-applying the same edit changed the render:\n%q\n%q", first, second)
	}
}
