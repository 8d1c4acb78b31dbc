package ui

import (
	"fmt"
	"os"
	"strings"

	"inkwheel/internal/colormath"
)

// Swatch rendering for CMYK colors. Uses 24-bit SGR background codes
// when the terminal advertises truecolor, otherwise falls back to a
// plain hex label so the output still carries the information.

const swatchWidth = 8

// supportsTruecolor checks the COLORTERM convention for 24-bit output
func supportsTruecolor() bool {
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	return strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit")
}

// Swatch returns a colored block for the given color, or a bare hex
// label when rich output is unavailable.
func Swatch(c colormath.CMYK) string {
	rgb := c.RGB()
	if !IsRich() || !supportsTruecolor() {
		return rgb.Hex()
	}
	block := strings.Repeat(" ", swatchWidth)
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", rgb.R, rgb.G, rgb.B, block)
}

// SwatchRow renders a sequence of colors side by side with a gap,
// base color first.
func SwatchRow(colors []colormath.CMYK) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = Swatch(c)
	}
	return strings.Join(parts, " ")
}

// SwatchLine renders one labeled swatch line: block, hex, CMYK channels.
func SwatchLine(label string, c colormath.CMYK) string {
	return fmt.Sprintf("  %s  %s  %s  %s",
		Swatch(c),
		Bold("%s", c.Hex()),
		Muted("cmyk(%s)", c.String()),
		Subtle("%s", label))
}
