package common

import (
	"strconv"
	"strings"
	"time"
)

// Date and month layouts used everywhere user-visible dates appear.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// FormatAmount renders an amount followed by the currency symbol.
// The symbol may be empty (user disabled it in the settings), in which case
// no trailing space is left behind.
//
// Examples:
//
//	FormatAmount(12, "€")    → "12 €"
//	FormatAmount(12.5, "")   → "12.5"
func FormatAmount(amount float64, currency string) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// Truncate shortens s to at most n runes. Rune-safe: category and description
// strings routinely start with an emoji.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// CurrentMonth returns the current month as "YYYY-MM".
func CurrentMonth(now time.Time) string {
	return now.Format(MonthLayout)
}

// PreviousMonth returns the month 30 days ago as "YYYY-MM".
func PreviousMonth(now time.Time) string {
	return now.AddDate(0, 0, -30).Format(MonthLayout)
}

// MonthNumber extracts the 1-12 month number out of a "YYYY-MM" selector.
func MonthNumber(month string) (int, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(month))
	if err != nil {
		return 0, ErrInvalidMonth
	}
	return int(t.Month()), nil
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
