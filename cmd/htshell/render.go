package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	usedSlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	emptySlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))
)

const slotsPerRow = 64

// renderSlots draws one cell per slot, slotsPerRow to a line, each line
// prefixed with the index of its first slot.
func renderSlots(layout []string) string {
	if len(layout) == 0 {
		return "(no slots)"
	}

	width := len(fmt.Sprint(len(layout) - 1))
	var b strings.Builder
	used := 0
	for row := 0; row < len(layout); row += slotsPerRow {
		fmt.Fprintf(&b, "%*d ", width, row)
		end := min(row+slotsPerRow, len(layout))
		for _, key := range layout[row:end] {
			if key == "" {
				b.WriteString(emptySlotStyle.Render("·"))
				continue
			}
			used++
			b.WriteString(usedSlotStyle.Render("■"))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d/%d slots used", used, len(layout))
	return b.String()
}
