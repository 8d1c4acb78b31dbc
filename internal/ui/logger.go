package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)

	clrAccent  = color.New(color.FgHiCyan, color.Bold)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
)

// Box-drawing characters shared by banner and grouped output
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = color.New(color.FgBlue).Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Printf("%s  %s  %s\n", ts, icon, styledMsg)
}

// LogSection creates a section header
func LogSection(title string) {
	fmt.Println()
	pad := 50 - len(title)
	if pad < 2 {
		pad = 2
	}
	header := fmt.Sprintf("%s %s %s",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", pad)))
	fmt.Println(header)
}

// LogGracefulShutdown announces a clean shutdown
func LogGracefulShutdown() {
	fmt.Println()
	LogStatus("info", "Shutting down gracefully...")
}

// LogRequest displays one served API request
func LogRequest(method, path string, status int, elapsed time.Duration) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	statusStr := fmt.Sprintf("%d", status)
	switch {
	case status >= 500:
		statusStr = clrError.Sprint(statusStr)
	case status >= 400:
		statusStr = clrWarning.Sprint(statusStr)
	default:
		statusStr = clrSuccess.Sprint(statusStr)
	}

	fmt.Printf("%s  %s  %s %s %s\n",
		ts,
		statusStr,
		clrSubtle.Sprintf("%-6s", method),
		clrAccent.Sprint(path),
		clrDim.Sprint(elapsed.Round(time.Microsecond).String()))
}
