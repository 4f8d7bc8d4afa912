package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/rngit/internal/config"
	"github.com/henri123lemoine/rngit/internal/debug"
	"github.com/henri123lemoine/rngit/internal/git"
	"github.com/henri123lemoine/rngit/internal/ui"
)

// Model is the main application model.
type Model struct {
	// Configuration
	config   *config.Config
	keys     KeyMap
	help     help.Model
	interval time.Duration

	// Repository. Nil when opening failed.
	repo    git.Source
	openErr error

	// Data
	snapshot     git.Snapshot
	needsRefresh bool
	refreshes    int

	// UI
	width   int
	height  int
	resizes int

	quitting bool
}

// New creates a new Model. repo may be nil, in which case openErr says why.
func New(cfg *config.Config, repo git.Source, openErr error) Model {
	return Model{
		config:       cfg,
		keys:         KeyMapFromConfig(&cfg.Keys),
		help:         help.New(),
		interval:     cfg.TickInterval(),
		repo:         repo,
		openErr:      openErr,
		needsRefresh: true,
	}
}

// Init starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.needsRefresh = true
		}

	case TickMsg:
		cmd = tick(m.interval)
	}

	m.refresh()
	return m, cmd
}

// resize records a new terminal size. It reports whether anything changed.
func (m *Model) resize(width, height int) bool {
	if width == m.width && height == m.height {
		return false
	}
	m.width = width
	m.height = height
	m.resizes++
	m.help.Width = width
	return true
}

// refresh rebuilds the snapshot if one is pending. Without a repository
// nothing is queried and the request stays pending.
func (m *Model) refresh() {
	if !m.needsRefresh || m.repo == nil {
		return
	}
	m.snapshot = git.Build(m.repo)
	m.needsRefresh = false
	m.refreshes++
	debug.Log("refresh %d done", m.refreshes)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	params := ui.RenderParams{
		Title:      m.config.UI.Title,
		OpenErr:    m.openErr,
		Snapshot:   m.snapshot,
		Width:      m.width,
		Height:     m.height,
		HeadColor:  m.config.UI.HeadColor,
		Background: m.config.UI.Background,
		ShowIcons:  m.config.UI.ShowIcons,
	}
	if m.config.UI.ShowHelp {
		params.Help = m.help.View(m.keys)
	}
	return ui.Render(params)
}

// NeedsRefresh reports whether a refresh is pending.
func (m Model) NeedsRefresh() bool {
	return m.needsRefresh
}

// Snapshot returns the repository state as of the last refresh.
func (m Model) Snapshot() git.Snapshot {
	return m.snapshot
}

// Quitting returns true once the quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}
