// Package app wires the terminal UI over the catalog and the progress
// store and runs the root Bubble Tea program.
package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/screen"
	"github.com/jheine/lernbox/internal/screens/home"
	"github.com/jheine/lernbox/internal/selection"
	"github.com/jheine/lernbox/internal/stats"
	"github.com/jheine/lernbox/internal/store"
	"github.com/jheine/lernbox/internal/ui/layout"
)

// Deps carries everything the screens need.
type Deps struct {
	Catalog *bank.Catalog
	Store   *store.Store
	Engine  *selection.Engine
	Quiz    *quiz.Session
	Stats   *stats.Service
}

// NewDeps builds the screen dependencies over an open store.
func NewDeps(catalog *bank.Catalog, st *store.Store) *Deps {
	engine := selection.New(catalog, st.Progress())
	return &Deps{
		Catalog: catalog,
		Store:   st,
		Engine:  engine,
		Quiz:    quiz.NewSession(catalog, engine, st.Progress(), st.Sessions()),
		Stats:   stats.New(catalog, st.Topics(), st.Sessions()),
	}
}

type dueCountMsg struct {
	count int
}

// Model is the root Bubble Tea model.
type Model struct {
	deps   *Deps
	router *router.Router
	width  int
	height int
	due    int
}

func newModel(deps *Deps) Model {
	return Model{
		deps:   deps,
		router: router.New(home.New(deps.Catalog, deps.Quiz, deps.Stats, deps.Store)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.refreshDueCmd()
}

func (m Model) refreshDueCmd() tea.Cmd {
	return func() tea.Msg {
		ids, err := m.deps.Store.Progress().Due(
			context.Background(), m.deps.Catalog.Len(), m.deps.Catalog.IDs(), time.Now())
		if err != nil {
			return dueCountMsg{}
		}
		return dueCountMsg{count: len(ids)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dueCountMsg:
		m.due = msg.count
		return m, nil

	case screen.RefreshDueMsg:
		return m, m.refreshDueCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.due, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program over the given dependencies.
func Run(deps *Deps) error {
	p := tea.NewProgram(newModel(deps))
	_, err := p.Run()
	return err
}
