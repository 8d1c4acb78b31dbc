package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var bannerEmitted = false

// EmitBanner displays a boxed startup banner once, respecting TTY and
// output-mode flags.
func EmitBanner(version, tagline string) {
	if bannerEmitted {
		return
	}
	if !isTTY() {
		return
	}
	// Skip for --json or --version flags
	for _, arg := range os.Args {
		if arg == "--json" || arg == "--version" || arg == "-v" {
			return
		}
	}

	fmt.Println()

	// Product badge
	badge := color.New(color.BgCyan, color.FgBlack, color.Bold).Sprint(" ◆ INKWHEEL ")
	ver := Muted("%s", version)

	width := 60
	topBorder := Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, width)+boxTopRight)
	fmt.Println(topBorder)

	titleText := fmt.Sprintf("  %s %s", badge, ver)
	titlePad := width - VisibleWidth(titleText)
	if titlePad < 0 {
		titlePad = 0
	}
	fmt.Printf("%s%s%s%s\n",
		Muted(boxVertical),
		titleText,
		strings.Repeat(" ", titlePad),
		Muted(boxVertical))

	subtitleText := "  " + tagline
	subtitlePad := width - len(subtitleText)
	if subtitlePad < 0 {
		subtitlePad = 0
	}
	fmt.Printf("%s%s%s%s\n",
		Muted(boxVertical),
		Subtle("%s", subtitleText),
		strings.Repeat(" ", subtitlePad),
		Muted(boxVertical))

	bottomBorder := Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, width)+boxBottomRight)
	fmt.Println(bottomBorder)
	fmt.Println()

	bannerEmitted = true
}

// isTTY checks if stdout is a terminal
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// ResetBanner allows banner to be shown again (for testing)
func ResetBanner() {
	bannerEmitted = false
}
