package middleware

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateForLog(t *testing.T) {
	short := "12 kebab da ciccio"
	if got := truncateForLog(short); got != short {
		t.Errorf("short text altered: %q", got)
	}

	long := strings.Repeat("a", 60)
	got := truncateForLog(long)
	if got != strings.Repeat("a", 50)+"..." {
		t.Errorf("long text = %q", got)
	}

	// Emoji must not be split mid-rune.
	emoji := strings.Repeat("🍔", 60)
	got = truncateForLog(emoji)
	if !utf8.ValidString(got) {
		t.Errorf("truncation produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text missing ellipsis: %q", got)
	}
	if n := strings.Count(got, "🍔"); n != 50 {
		t.Errorf("kept %d runes, want 50", n)
	}
}
