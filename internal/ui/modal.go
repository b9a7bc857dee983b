package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/easel/internal/selection"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

type modalKind int

const (
	modalCount modalKind = iota
	modalGoto
)

// modalDoneMsg carries a validated modal value back to the model.
type modalDoneMsg struct {
	kind  modalKind
	value int
}

// inputModal asks for a single number. Invalid input keeps it open with the
// error shown under the field.
type inputModal struct {
	kind  modalKind
	title string
	hint  string
	input textinput.Model
	parse func(string) (int, error)
	err   error
}

func newCountModal(total int) *inputModal {
	ti := textinput.New()
	ti.Placeholder = "e.g. 30"
	ti.CharLimit = 9
	ti.Width = 20
	return &inputModal{
		kind:  modalCount,
		title: "Select rows",
		hint:  fmt.Sprintf("Rows are taken from page 1 onward; %d available", total),
		input: ti,
		parse: selection.ParseCount,
	}
}

func newGotoModal(totalPages int) *inputModal {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = 9
	ti.Width = 20
	return &inputModal{
		kind:  modalGoto,
		title: "Go to page",
		hint:  fmt.Sprintf("1-%d", totalPages),
		input: ti,
		parse: func(raw string) (int, error) {
			return parsePage(raw, totalPages)
		},
	}
}

// parsePage validates a page number against the known page count.
func parsePage(raw string, totalPages int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("not a page number: %q", trimmed)
	}
	if n < 1 || n > totalPages {
		return 0, fmt.Errorf("page must be between 1 and %d", totalPages)
	}
	return n, nil
}

// Focus focuses the text field and returns its blink command.
func (im *inputModal) Focus() tea.Cmd {
	return im.input.Focus()
}

func (im *inputModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Escape):
			return im, nil, true
		case key.Matches(msg, keys.Confirm):
			value, err := im.parse(im.input.Value())
			if err != nil {
				im.err = err
				return im, nil, false
			}
			kind := im.kind
			return im, func() tea.Msg { return modalDoneMsg{kind: kind, value: value} }, true
		}
	}

	var cmd tea.Cmd
	im.input, cmd = im.input.Update(msg)
	return im, cmd, false
}

func (im *inputModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(im.title))
	b.WriteString("\n\n")
	b.WriteString(im.input.View())
	b.WriteString("\n\n")
	if im.err != nil {
		b.WriteString(styles.DangerText.Render(im.err.Error()))
	} else {
		b.WriteString(styles.FaintText.Render(im.hint))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("enter confirm · esc cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(48).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
