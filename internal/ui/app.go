package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/jester/internal/dashboard"
	"github.com/five82/jester/internal/jokeapi"
	"github.com/five82/jester/internal/logging"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *dashboard.Controller
	Logger     *logging.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx    context.Context
	ctrl   *dashboard.Controller
	logger *logging.Logger
	keys   keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string // transient message, e.g. a failed preference write

	// Components
	spinner spinner.Model
	help    help.Model
	body    viewport.Model

	// Rendered tips panel, cached per glamour style and width.
	tips    string
	tipsKey string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		ctrl:    opts.Controller,
		logger:  opts.Logger,
		keys:    DefaultKeyMap(),
		theme:   ThemeFor(opts.Controller.Snapshot().DarkMode),
		spinner: s,
		help:    help.New(),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model. The first fetch fires on mount.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchJokeCmd(m.ctx, m.ctrl.Refresh()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if next.ready {
		next.syncBody()
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.body = viewport.New(msg.Width, m.bodyHeight())
		} else {
			m.body.Width = msg.Width
			m.body.Height = m.bodyHeight()
		}
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case jokeResultMsg:
		// State already lives in the controller; the message only
		// triggers a redraw.
		m.logger.Debug("joke fetch delivered to ui",
			logging.F("seq", msg.seq),
			logging.F("category", msg.category.String()),
			logging.F("ok", msg.err == nil),
		)
		if msg.err == nil {
			m.body.GotoTop()
		}
		return m, nil
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

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		dark, err := m.ctrl.ToggleTheme()
		m.theme = ThemeFor(dark)
		m.applyTheme()
		m.notice = ""
		if err != nil {
			m.notice = "Theme not saved: " + err.Error()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		// Mirrors the disabled button: no new request while one is in flight.
		if m.ctrl.Snapshot().Loading {
			return m, nil
		}
		return m, fetchJokeCmd(m.ctx, m.ctrl.Refresh())

	case key.Matches(msg, m.keys.PrevCategory):
		return m, m.selectCategory(m.categoryIndex() - 1)

	case key.Matches(msg, m.keys.NextCategory):
		return m, m.selectCategory(m.categoryIndex() + 1)

	case key.Matches(msg, m.keys.PickCategory):
		return m, m.selectCategory(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.ScrollUp):
		m.body.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.body.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.body.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.body.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.body.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.body.GotoBottom()
	}

	return m, nil
}

// categoryIndex returns the position of the selected category in the strip.
func (m Model) categoryIndex() int {
	selected := m.ctrl.Snapshot().SelectedCategory
	for i, c := range jokeapi.Categories() {
		if c == selected {
			return i
		}
	}
	return 0
}

// selectCategory switches to the category at idx, wrapping at both ends.
// Every selection fires a fetch, including re-selecting the current one.
func (m Model) selectCategory(idx int) tea.Cmd {
	categories := jokeapi.Categories()
	n := len(categories)
	idx = ((idx % n) + n) % n
	return fetchJokeCmd(m.ctx, m.ctrl.SelectCategory(categories[idx]))
}

// applyTheme restyles components that hold their own styles.
func (m *Model) applyTheme() {
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Primary))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
}

// syncBody re-renders the scrollable body from the current snapshot.
func (m *Model) syncBody() {
	m.refreshTips()
	m.body.SetContent(m.renderBody(m.ctrl.Snapshot()))
}

// Messages

// jokeResultMsg reports that a fetch has resolved.
type jokeResultMsg struct {
	seq      uint64
	category jokeapi.Category
	err      error
}

// Commands

func fetchJokeCmd(ctx context.Context, fetch *dashboard.Fetch) tea.Cmd {
	return func() tea.Msg {
		err := fetch.Run(ctx)
		return jokeResultMsg{seq: fetch.Seq(), category: fetch.Category(), err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
