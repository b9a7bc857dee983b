package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact columns are forced.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width for the full header.
	LayoutWideWidth = 140
)

// Chrome rows around the grid: header, footer and the box borders.
const (
	headerRows = 1
	footerRows = 1
	boxRows    = 2
)

// Log overlay limits.
const (
	// LogTailLines is the number of log lines read when the overlay opens.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultRetryDelay is used when no retry policy is supplied.
	DefaultRetryDelay = 2 * time.Second

	// FlashDuration is how long transient status messages stay visible.
	FlashDuration = 4 * time.Second
)

// renderBox draws a rounded border around content filling width x height.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	border := m.theme.Border
	if focused {
		border = m.theme.BorderFocus
	}
	styles := m.theme.Styles()
	body := content
	if title != "" {
		body = styles.AccentText.Bold(true).Render(title) + "\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(max(width-2, 0)).
		Height(max(height-boxRows, 0)).
		MaxHeight(max(height, 0)).
		Render(body)
}
