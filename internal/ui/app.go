package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/easel/internal/artic"
	"github.com/five82/easel/internal/prefs"
	"github.com/five82/easel/internal/selection"
	"github.com/five82/easel/internal/state"
)

// PageLoader fetches pages into the page store. Request runs on the UI loop;
// Load blocks and runs inside a tea.Cmd.
type PageLoader interface {
	Request(page int)
	Load(ctx context.Context, page int) error
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Loader     PageLoader
	Pages      *state.Store
	Selection  *selection.Store
	Reconciler *selection.Reconciler
	RetryDelay func(failures int) time.Duration
	StartPage  int
	ThemeName  string
	Compact    bool
	PrefsPath  string
	LogPath    string
	Logger     zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	loader     PageLoader
	pages      *state.Store
	picks      *selection.Store
	view       selection.View
	reconciler *selection.Reconciler
	retryDelay func(int) time.Duration
	prefsPath  string
	logPath    string
	log        zerolog.Logger
	keys       keyMap

	// UI state
	theme   Theme
	compact bool
	width   int
	height  int
	ready   bool

	// Page state
	page     int    // requested page, 1-based
	loadSeq  uint64 // bumps on every request; retries for older requests are dropped
	snapshot state.Snapshot
	cursor   int

	paginator paginator.Model
	spinner   spinner.Model

	// Overlays
	modal    Modal
	showHelp bool
	search   searchState
	logs     logState

	flash   string
	flashAt time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	picks := opts.Selection
	if picks == nil {
		picks = selection.NewStore()
	}
	reconciler := opts.Reconciler
	if reconciler == nil {
		reconciler = selection.NewReconciler(picks, opts.Logger)
	}

	retryDelay := opts.RetryDelay
	if retryDelay == nil {
		retryDelay = func(int) time.Duration { return DefaultRetryDelay }
	}

	pages := opts.Pages
	if pages == nil {
		pages = &state.Store{}
	}

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = 1
	pager.SetTotalPages(1)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		loader:     opts.Loader,
		pages:      pages,
		picks:      picks,
		view:       selection.NewView(picks),
		reconciler: reconciler,
		retryDelay: retryDelay,
		prefsPath:  prefsPath,
		logPath:    opts.LogPath,
		log:        opts.Logger,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		compact:    opts.Compact,
		page:       max(opts.StartPage, 1),
		paginator:  pager,
		spinner:    spin,
		search:     newSearchState(),
		logs:       newLogState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.loader != nil {
		m.loader.Request(m.page)
	}
	return tea.Batch(
		m.spinner.Tick,
		m.loadCmd(m.page, m.loadSeq),
	)
}

// Update implements tea.Model. Every message ends with a reconcile pass so
// planned selections commit as soon as their page is on screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.reconcile()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateLogViewport()
		return m, nil

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case retryMsg:
		if msg.seq != m.loadSeq || msg.page != m.page {
			return m, nil
		}
		m.log.Debug().Int("page", msg.page).Msg("retrying failed page")
		return m, m.requestPage(m.page)

	case modalDoneMsg:
		return m.handleModalDone(msg)

	case logsLoadedMsg:
		m.handleLogsLoaded(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and similar messages belong to the open text input.
	if m.modal != nil {
		next, cmd, _ := m.modal.Update(msg, m.keys)
		m.modal = next
		return m, cmd
	}
	if m.search.active {
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.search.active {
		return m.handleSearchInput(msg)
	}

	if m.logs.visible {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleDense):
		m.compact = !m.compact
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.logs.visible = true
		return m, m.loadLogsCmd()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snapshot.Records)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.snapshot.Records)-1, 0)

	case key.Matches(msg, m.keys.NextPage):
		return m, m.goToPage(m.page + 1)
	case key.Matches(msg, m.keys.PrevPage):
		return m, m.goToPage(m.page - 1)
	case key.Matches(msg, m.keys.FirstPage):
		return m, m.goToPage(1)
	case key.Matches(msg, m.keys.LastPage):
		return m, m.goToPage(m.totalPages())
	case key.Matches(msg, m.keys.Refresh):
		return m, m.requestPage(m.page)

	case key.Matches(msg, m.keys.GotoPage):
		if m.totalPages() == 0 {
			m.setFlash("Page count not known yet")
			return m, nil
		}
		modal := newGotoModal(m.totalPages())
		m.modal = modal
		return m, modal.Focus()

	case key.Matches(msg, m.keys.SelectCount):
		if !m.snapshot.HasMeta {
			m.setFlash("Page count not known yet")
			return m, nil
		}
		modal := newCountModal(m.snapshot.Meta.Total)
		m.modal = modal
		return m, modal.Focus()

	case key.Matches(msg, m.keys.ToggleRow):
		m.toggleRow()
	case key.Matches(msg, m.keys.TogglePage):
		m.togglePage()
	case key.Matches(msg, m.keys.ClearAll):
		m.picks.Clear()
		m.log.Info().Msg("selection cleared")
		m.setFlash("Selection cleared")

	case key.Matches(msg, m.keys.Search):
		return m, m.search.begin()
	case key.Matches(msg, m.keys.NextMatch):
		m.cursor = m.search.step(1, m.cursor)
	case key.Matches(msg, m.keys.PrevMatch):
		m.cursor = m.search.step(-1, m.cursor)
	case key.Matches(msg, m.keys.Escape):
		m.search.clear()
	}

	return m, nil
}

// handlePageLoaded applies a finished fetch.
func (m Model) handlePageLoaded(msg pageLoadedMsg) (Model, tea.Cmd) {
	m.snapshot = m.pages.Snapshot()
	if msg.seq != m.loadSeq || msg.page != m.page {
		return m, nil
	}

	if total := m.totalPages(); total > 0 {
		m.paginator.SetTotalPages(total)
	}
	m.paginator.Page = m.page - 1
	m.cursor = min(m.cursor, max(len(m.snapshot.Records)-1, 0))
	m.search.refresh(titles(m.snapshot.Records))

	if msg.err != nil {
		delay := m.retryDelay(m.snapshot.ConsecutiveFailures)
		m.log.Warn().
			Err(msg.err).
			Int("page", msg.page).
			Int("failures", m.snapshot.ConsecutiveFailures).
			Dur("retry_in", delay).
			Msg("page load failed")
		return m, retryCmd(msg.page, msg.seq, delay)
	}
	return m, nil
}

// handleModalDone applies a submitted modal value.
func (m Model) handleModalDone(msg modalDoneMsg) (Model, tea.Cmd) {
	switch msg.kind {
	case modalCount:
		plan := m.view.SelectCount(msg.value, m.snapshot.Meta)
		m.log.Info().
			Int("requested", msg.value).
			Int("planned", plan.Pending()).
			Int("pages", plan.Len()).
			Msg("adopted selection plan")
		m.setFlash(fmt.Sprintf("Selecting %d across %d %s", plan.Pending(), plan.Len(), plural(plan.Len(), "page", "pages")))
		return m, nil
	case modalGoto:
		return m, m.goToPage(msg.value)
	}
	return m, nil
}

// goToPage requests page if it is in range and not already shown.
func (m *Model) goToPage(page int) tea.Cmd {
	if page < 1 || page == m.page {
		return nil
	}
	if total := m.totalPages(); total > 0 && page > total {
		return nil
	}
	m.cursor = 0
	return m.requestPage(page)
}

// requestPage marks page as wanted and returns the command that loads it.
func (m *Model) requestPage(page int) tea.Cmd {
	m.page = page
	m.loadSeq++
	if m.loader != nil {
		m.loader.Request(page)
	}
	m.snapshot = m.pages.Snapshot()
	m.paginator.Page = page - 1
	return m.loadCmd(page, m.loadSeq)
}

// reconcile hands the current page to the selection reconciler.
func (m *Model) reconcile() {
	m.reconciler.Observe(m.snapshot.PageData())
}

// toggleRow flips the cursor row and applies the page's resulting selection.
func (m *Model) toggleRow() {
	ids := artic.RecordIDs(m.snapshot.Records)
	if m.cursor < 0 || m.cursor >= len(ids) {
		return
	}
	target := ids[m.cursor]
	checked := m.view.VisibleSelected(ids)

	subset := make([]selection.RecordID, 0, len(checked)+1)
	for _, id := range checked {
		if id != target {
			subset = append(subset, id)
		}
	}
	if !m.view.IsChecked(target) {
		subset = append(subset, target)
	}
	m.view.ApplyGridSelection(m.page, ids, subset)
}

// togglePage checks every row on the page, or clears them all when every row
// is already checked.
func (m *Model) togglePage() {
	ids := artic.RecordIDs(m.snapshot.Records)
	if len(ids) == 0 {
		return
	}
	var subset []selection.RecordID
	if len(m.view.VisibleSelected(ids)) < len(ids) {
		subset = ids
	}
	m.view.ApplyGridSelection(m.page, ids, subset)
}

func (m Model) totalPages() int {
	if !m.snapshot.HasMeta {
		return 0
	}
	return m.snapshot.Meta.TotalPages()
}

// loading reports whether the requested page has not arrived yet.
func (m Model) loading() bool {
	return m.snapshot.Loading || m.snapshot.Page != m.page
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
	}
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashAt = time.Now()
}

func (m Model) activeFlash() string {
	if m.flash == "" || time.Since(m.flashAt) > FlashDuration {
		return ""
	}
	return m.flash
}

// renderMain renders the header, grid and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.logs.visible {
		b.WriteString(m.renderLogs())
	} else {
		b.WriteString(m.renderGrid())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func titles(records []artic.Artwork) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.TitleText()
	}
	return out
}

// Messages

type pageLoadedMsg struct {
	page int
	seq  uint64
	err  error
}

type retryMsg struct {
	page int
	seq  uint64
}

// Commands

func (m Model) loadCmd(page int, seq uint64) tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		if loader == nil {
			return pageLoadedMsg{page: page, seq: seq}
		}
		return pageLoadedMsg{page: page, seq: seq, err: loader.Load(ctx, page)}
	}
}

func retryCmd(page int, seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return retryMsg{page: page, seq: seq}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
