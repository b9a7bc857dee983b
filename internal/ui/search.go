package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// searchState holds the title search. Matches only move the cursor; they
// never touch the selection.
type searchState struct {
	active  bool
	input   textinput.Model
	query   string
	matches []int // row indices, best match first
	idx     int
}

func newSearchState() searchState {
	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 100
	ti.Prompt = "/"
	return searchState{input: ti}
}

// begin opens the search prompt.
func (s *searchState) begin() tea.Cmd {
	s.active = true
	s.input.SetValue("")
	return s.input.Focus()
}

// clear drops the query and its matches.
func (s *searchState) clear() {
	s.query = ""
	s.matches = nil
	s.idx = 0
}

// refresh recomputes matches against a newly loaded page.
func (s *searchState) refresh(titles []string) {
	s.matches = matchTitles(s.query, titles)
	s.idx = 0
}

// step moves to the next (dir > 0) or previous match and returns the row to
// put the cursor on. Without matches the cursor stays.
func (s *searchState) step(dir, cursor int) int {
	if len(s.matches) == 0 {
		return cursor
	}
	n := len(s.matches)
	s.idx = ((s.idx+dir)%n + n) % n
	return s.matches[s.idx]
}

// isMatch reports whether row is one of the current matches.
func (s searchState) isMatch(row int) bool {
	for _, i := range s.matches {
		if i == row {
			return true
		}
	}
	return false
}

// matchTitles fuzzy-matches query against titles, best first.
func matchTitles(query string, titles []string) []int {
	if query == "" || len(titles) == 0 {
		return nil
	}
	found := fuzzy.Find(query, titles)
	if len(found) == 0 {
		return nil
	}
	out := make([]int, len(found))
	for i, match := range found {
		out[i] = match.Index
	}
	return out
}

// handleSearchInput handles keyboard input while the search prompt is open.
func (m Model) handleSearchInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.search.active = false
		m.search.input.Blur()
		m.search.query = m.search.input.Value()
		m.search.refresh(titles(m.snapshot.Records))
		if len(m.search.matches) > 0 {
			m.cursor = m.search.matches[0]
		} else if m.search.query != "" {
			m.setFlash("No title matches " + truncate(m.search.query, 24))
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.search.active = false
		m.search.input.Blur()
		m.search.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}
