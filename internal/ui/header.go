package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: range shown, selection counts and
// connection state.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("easel", styles.Logo)}

	if rng := m.rangeLabel(); rng != "" {
		parts = append(parts, bg.Render(rng, styles.Text))
	}

	parts = append(parts, m.selectionLabel(styles, bg))

	if m.snapshot.IsOffline() {
		parts = append(parts, styles.Banner.Render("OFFLINE"))
		parts = append(parts, bg.Render("Retrying...", styles.WarningText.Bold(true)))
	} else if m.snapshot.LastError != nil && !m.loading() {
		parts = append(parts, bg.Render("Fetch failed", styles.DangerText))
	}

	if flash := m.activeFlash(); flash != "" {
		parts = append(parts, bg.Render(flash, styles.InfoText))
	}

	if m.width >= LayoutWideWidth && !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxHeight(headerRows).
		Render(bg.Join(parts, "  "))
}

// rangeLabel returns "Showing A-B of TOTAL" for the loaded page.
func (m Model) rangeLabel() string {
	if !m.snapshot.HasMeta {
		return ""
	}
	total := m.snapshot.Meta.Total
	n := len(m.snapshot.Records)
	if n == 0 || m.loading() {
		return fmt.Sprintf("Showing 0 of %d", total)
	}
	first := (m.page-1)*m.snapshot.Meta.Limit + 1
	return fmt.Sprintf("Showing %d-%d of %d", first, first+n-1, total)
}

// selectionLabel returns "N selected", with the committed and pending split
// while a plan still has pages to visit.
func (m Model) selectionLabel(styles Styles, bg BgStyle) string {
	total := m.picks.TotalSelectedCount()
	label := bg.Render(fmt.Sprintf("%d selected", total), styles.SuccessText)
	if pending := m.picks.PendingCount(); pending > 0 {
		label += bg.Space() + bg.Render(
			fmt.Sprintf("(%d committed, %d pending)", m.picks.CommittedCount(), pending),
			styles.MutedText)
	}
	return label
}

// renderFooter renders the paginator and key hints, or the search prompt
// while it is open.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.search.active {
		return styles.Footer.Width(m.width).Render(m.search.input.View())
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"Space", "Toggle"},
		{"a", "Page"},
		{"s", "Select N"},
		{"h/l", "Page"},
		{":", "Go to"},
		{"/", "Search"},
		{"?", "More"},
	}
	if m.logs.visible {
		commands = []cmd{
			{"j/k", "Scroll"},
			{"r", "Reload"},
			{"L", "Close"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := []string{bg.Render(m.paginator.View(), styles.AccentText.Bold(true))}
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if m.search.query != "" {
		label := "/" + truncate(m.search.query, 18)
		if n := len(m.search.matches); n > 0 {
			label += fmt.Sprintf(" (%d/%d)", m.search.idx+1, n)
		} else {
			label += " (none)"
		}
		segments = append(segments, bg.Render(label, styles.AccentText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).MaxHeight(footerRows).Render(strings.Join(segments, bg.Spaces(2)))
}
