package transactions

import (
	"strings"
	"testing"
	"time"
)

func TestRenderMonthTable(t *testing.T) {
	txs := []*Transaction{
		{
			Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Amount:      12,
			Description: "una descrizione davvero lunga",
			Category:    "🍔 Cibo e altro",
		},
		{
			Date:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Amount: 8.5,
		},
	}

	out := RenderMonthTable(txs, "€")

	for _, want := range []string{
		"DATA", "DESCRIZIONE", "€", "CATEGORIA",
		"03-15", "03-10",
		"-12.00", "-8.50",
		"-20.50", "TOTAL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// Long fields are truncated to keep the table phone-sized.
	if strings.Contains(out, "una descrizione davvero lunga") {
		t.Errorf("description not truncated:\n%s", out)
	}
	if !strings.Contains(out, "una descrizione") {
		t.Errorf("truncated description missing:\n%s", out)
	}
	if strings.Contains(out, "🍔 Cibo e altro") {
		t.Errorf("category not truncated:\n%s", out)
	}
}
