package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors.
var (
	ColorBorder = lipgloss.Color("#575653")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorRed    = lipgloss.Color("#D14D41")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorRed)
)

// SeparatorRow inserted into Table.Rows draws a horizontal rule.
const SeparatorRow = "---"

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a bordered table. The first column is left-aligned,
// the rest are right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style, alignRight bool) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if alignRight && i > 0 {
				cell = pad + cell
			} else {
				cell += pad
			}
			b.WriteString(style.Render(" " + cell + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		line(t.Headers, headerStyle, false)
		rule("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == SeparatorRow {
			rule("├", "┼", "┤")
			continue
		}
		line(row, valueStyle, true)
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// RenderSummary renders aligned "label  value" lines.
func RenderSummary(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "  %s  %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", width, p[0])),
			valueStyle.Render(p[1]))
	}
	return b.String()
}

// RenderWarning renders a highlighted single-line notice.
func RenderWarning(msg string) string {
	return warnStyle.Render("! "+msg) + "\n"
}
