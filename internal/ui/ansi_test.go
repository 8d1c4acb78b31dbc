package ui

import "testing"

func TestStripAnsi(t *testing.T) {
	in := "\x1b[31mred\x1b[0m plain"
	if got := StripAnsi(in); got != "red plain" {
		t.Errorf("StripAnsi() = %q, want %q", got, "red plain")
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"plain", 5},
		{"\x1b[1;32mgreen\x1b[0m", 5},
		{"", 0},
		{"héllo", 5}, // runes, not bytes
	}
	for _, tt := range tests {
		if got := VisibleWidth(tt.in); got != tt.want {
			t.Errorf("VisibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	// Already wide enough: unchanged
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight overflow = %q", got)
	}
}
