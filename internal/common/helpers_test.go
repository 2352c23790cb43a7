package common

import (
	"errors"
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{12, "€", "12 €"},
		{12.5, "€", "12.5 €"},
		{12, "", "12"},
		{-8.25, "USD", "-8.25 USD"},
		{0, "€", "0 €"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"kebab", 15, "kebab"},
		{"una descrizione molto lunga", 15, "una descrizione"},
		{"🍔 Cibo e bevande varie", 7, "🍔 Cibo"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.s, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestMonthNumber(t *testing.T) {
	n, err := MonthNumber("2024-03")
	if err != nil {
		t.Fatalf("MonthNumber: %v", err)
	}
	if n != 3 {
		t.Errorf("month = %d, want 3", n)
	}

	for _, bad := range []string{"2024-13", "03-2024", "marzo", ""} {
		if _, err := MonthNumber(bad); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("MonthNumber(%q) err = %v, want ErrInvalidMonth", bad, err)
		}
	}
}

func TestMonthSelectors(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	if got := CurrentMonth(now); got != "2024-03" {
		t.Errorf("CurrentMonth = %q, want 2024-03", got)
	}
	if got := PreviousMonth(now); got != "2024-02" {
		t.Errorf("PreviousMonth = %q, want 2024-02", got)
	}

	// Year boundary.
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if got := PreviousMonth(jan); got != "2023-12" {
		t.Errorf("PreviousMonth(january) = %q, want 2023-12", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-03-15 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := d.Format(DateLayout); got != "2024-03-15" {
		t.Errorf("date = %q, want 2024-03-15", got)
	}

	for _, bad := range []string{"15-03-2024", "2024-03-32", "domani", ""} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) err = %v, want ErrInvalidDate", bad, err)
		}
	}
}
