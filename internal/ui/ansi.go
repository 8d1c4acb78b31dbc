package ui

import (
	"regexp"
	"unicode/utf8"
)

// SGR (Select Graphic Rendition) codes: ESC[...m
var ansiSGRPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsi removes all ANSI SGR codes from a string
func StripAnsi(input string) string {
	return ansiSGRPattern.ReplaceAllString(input, "")
}

// VisibleWidth returns the display width of a string, ignoring ANSI codes
// This counts runes, not bytes, for proper Unicode support
func VisibleWidth(input string) int {
	stripped := StripAnsi(input)
	return utf8.RuneCountInString(stripped)
}

// PadRight pads a string to a minimum visible width (right-aligned content)
func PadRight(input string, width int) string {
	visible := VisibleWidth(input)
	if visible >= width {
		return input
	}
	return input + spaces(width-visible)
}

// PadLeft pads a string to a minimum visible width (left-aligned content)
func PadLeft(input string, width int) string {
	visible := VisibleWidth(input)
	if visible >= width {
		return input
	}
	return spaces(width-visible) + input
}

// spaces returns a string of n spaces
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
