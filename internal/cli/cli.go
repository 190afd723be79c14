// Package cli provides the styled terminal output used by the print-only
// report and conversion summaries. Colors turn off automatically for pipes,
// NO_COLOR (https://no-color.org/), and TERM=dumb.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var colorEnabled = detectColor()

func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// Themed text helpers
func Success(text string) string { return render(successStyle, "✓ "+text) }
func Error(text string) string   { return render(errorStyle, "✗ "+text) }
func Warning(text string) string { return render(warningStyle, "⚠ "+text) }
func Dim(text string) string     { return render(dimStyle, text) }
func Bold(text string) string    { return render(boldStyle, text) }

// Title renders a section title over a separator line.
func Title(text string) string {
	return Bold(text) + "\n" + Dim(strings.Repeat("─", len([]rune(text))))
}

// Usage prints a styled usage error to stderr. The caller exits.
func Usage(msg, example string) {
	fmt.Fprintln(os.Stderr, Error(msg))
	if example != "" {
		fmt.Fprintln(os.Stderr, Dim("example: "+example))
	}
}

// Count renders "3 entries" / "1 entry" style phrases.
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Table renders rows as plain columns padded to the widest cell. Rows may
// be ragged; trailing cells just end the line.
func Table(rows [][]string) string {
	widths := make([]int, 0)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(cell))))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
