package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/easel/internal/logtail"
)

// logState holds the log overlay.
type logState struct {
	visible  bool
	lines    []string
	err      error
	viewport viewport.Model
}

type logsLoadedMsg struct {
	lines []string
	err   error
}

func newLogState() logState {
	return logState{viewport: viewport.New(0, 0)}
}

// loadLogsCmd reads the tail of easel's own log file.
func (m Model) loadLogsCmd() tea.Cmd {
	path := m.logPath
	return func() tea.Msg {
		if path == "" {
			return logsLoadedMsg{}
		}
		lines, err := logtail.Read(path, LogTailLines)
		return logsLoadedMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogsLoaded(msg logsLoadedMsg) {
	m.logs.err = msg.err
	m.logs.lines = logtail.FormatLines(msg.lines)
	m.updateLogViewport()
	m.logs.viewport.GotoBottom()
}

// updateLogViewport sizes the viewport to the grid area and refills it.
func (m *Model) updateLogViewport() {
	m.logs.viewport.Width = max(m.width-4, 0)
	m.logs.viewport.Height = max(m.gridHeight()-boxRows-1, 0)
	m.logs.viewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logs.viewport.SetContent(m.renderLogContent())
}

func (m Model) renderLogContent() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width := m.logs.viewport.Width

	if m.logs.err != nil {
		return bg.FillLine(bg.Render("Cannot read log: "+m.logs.err.Error(), styles.DangerText), width)
	}
	if len(m.logs.lines) == 0 {
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	var b strings.Builder
	for i, line := range m.logs.lines {
		b.WriteString(bg.FillLine(bg.Render(truncate(line, width), m.levelStyle(line, styles)), width))
		if i < len(m.logs.lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// levelStyle colors a formatted line by its level tag, which is the first or
// second field depending on whether a timestamp was present.
func (m Model) levelStyle(line string, styles Styles) lipgloss.Style {
	fields := strings.Fields(line)
	for _, f := range fields[:min(len(fields), 2)] {
		switch f {
		case "ERR", "FTL", "PNC":
			return styles.DangerText
		case "WRN":
			return styles.WarningText
		case "DBG", "TRC":
			return styles.FaintText
		}
	}
	return styles.Text
}

// renderLogs renders the overlay in place of the grid.
func (m Model) renderLogs() string {
	title := "Log"
	if m.logPath != "" {
		title += " " + truncate(m.logPath, max(m.width-12, 10))
	}
	return m.renderBox(title, m.logs.viewport.View(), m.width, m.gridHeight(), true)
}

// handleLogsKey processes keyboard input while the overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleLogs), key.Matches(msg, m.keys.Escape):
		m.logs.visible = false
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadLogsCmd()
	case key.Matches(msg, m.keys.Down):
		m.logs.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logs.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		m.logs.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logs.viewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logs.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logs.viewport.HalfViewUp()
	}
	return m, nil
}
