package ui

import (
	"fmt"
	"strings"

	"github.com/five82/easel/internal/artic"
)

const (
	gutterWidth = 4 // "[x] "
	yearWidth   = 6
)

type column struct {
	title string
	width int
	value func(artic.Artwork) string
}

// columns lays out the grid for the given inner width. Compact mode keeps
// only the title, origin and dates.
func (m Model) columns(inner int) []column {
	compact := m.compact || m.width < LayoutCompactWidth

	fixed := gutterWidth + 2*(yearWidth+1)
	if compact {
		flex := max(inner-fixed-1, 10)
		title := flex * 65 / 100
		return []column{
			{"Title", title, artic.Artwork.TitleText},
			{"Place of Origin", flex - title, artic.Artwork.Origin},
			{"Start", yearWidth, artic.Artwork.StartYear},
			{"End", yearWidth, artic.Artwork.EndYear},
		}
	}

	flex := max(inner-fixed-3, 20)
	title := flex * 32 / 100
	origin := flex * 14 / 100
	artist := flex * 30 / 100
	return []column{
		{"Title", title, artic.Artwork.TitleText},
		{"Place of Origin", origin, artic.Artwork.Origin},
		{"Artist", artist, artic.Artwork.Artist},
		{"Inscriptions", flex - title - origin - artist, artic.Artwork.InscriptionText},
		{"Start", yearWidth, artic.Artwork.StartYear},
		{"End", yearWidth, artic.Artwork.EndYear},
	}
}

// gridHeight is the height of the grid box including its borders.
func (m Model) gridHeight() int {
	return max(m.height-headerRows-footerRows, boxRows+2)
}

// visibleRows is how many record rows fit under the box title and column header.
func (m Model) visibleRows() int {
	return max(m.gridHeight()-boxRows-2, 1)
}

// renderGrid renders the current page as a checkbox grid.
func (m Model) renderGrid() string {
	title := fmt.Sprintf("Page %d", m.page)
	if total := m.totalPages(); total > 0 {
		title += fmt.Sprintf(" of %d", total)
	}
	return m.renderBox(title, m.gridContent(), m.width, m.gridHeight(), true)
}

func (m Model) gridContent() string {
	styles := m.theme.Styles()
	inner := max(m.width-2, 0)

	switch {
	case m.loading():
		return m.spinner.View() + " " + styles.MutedText.Render(fmt.Sprintf("Loading page %d...", m.page))
	case len(m.snapshot.Records) == 0 && m.snapshot.LastError != nil:
		return styles.DangerText.Render(fmt.Sprintf("No data for page %d", m.page)) + "\n" +
			styles.MutedText.Render(truncate(m.snapshot.LastError.Error(), inner)) + "\n" +
			styles.WarningText.Render("Retrying...")
	case len(m.snapshot.Records) == 0:
		return styles.MutedText.Render("No artworks on this page")
	}

	cols := m.columns(inner)

	var b strings.Builder
	header := make([]string, 0, len(cols))
	for _, c := range cols {
		header = append(header, cell(c.title, c.width))
	}
	b.WriteString(styles.MutedText.Bold(true).Render(padRight("", gutterWidth) + strings.Join(header, " ")))

	records := m.snapshot.Records
	start, end := m.rowWindow(len(records))
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(i, records[i], cols, inner, styles))
	}
	return b.String()
}

// rowWindow returns the slice of rows to draw so the cursor stays visible.
func (m Model) rowWindow(n int) (int, int) {
	visible := m.visibleRows()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	return start, min(start+visible, n)
}

func (m Model) renderRow(i int, record artic.Artwork, cols []column, inner int, styles Styles) string {
	checked := m.view.IsChecked(record.RecordID())
	box := "[ ] "
	if checked {
		box = "[x] "
	}

	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, cell(c.value(record), c.width))
	}
	text := strings.Join(cells, " ")

	if i == m.cursor {
		return styles.Selected.Width(inner).Render(box + text)
	}

	boxStyle := styles.FaintText
	if checked {
		boxStyle = styles.Checked
	}
	textStyle := styles.Text
	if m.search.isMatch(i) {
		textStyle = styles.AccentText
	}
	return boxStyle.Render(box) + textStyle.Render(text)
}
