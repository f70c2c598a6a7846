// Package app assembles the TUI: it wires the engine, registry, and
// progression selector into the screen router and runs the Bubble Tea
// program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/engine"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/judge"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/progression"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/registry"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/router"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screen"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/home"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/practice"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/welcome"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/layout"
)

// Options carries the collaborators built by the CLI layer. Events,
// Progress, and Judge may be nil; the app degrades instead of failing.
type Options struct {
	Registry *registry.Registry
	Events   store.EventRepo
	Progress store.ProgressRepo
	Judge    *judge.Service

	Progression progression.Settings

	// InitialSlug opens the named kata directly instead of the home menu.
	InitialSlug string
}

type progressCountsMsg struct {
	completed int
	total     int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	opts       Options
	progress   store.ProgressRepo
	initialCmd tea.Cmd

	width     int
	height    int
	depth     int
	completed int
	total     int
}

// newAppModel builds the screen stack from the options.
func newAppModel(opts Options) AppModel {
	eng := engine.New(engine.Config{
		Events:   opts.Events,
		Progress: opts.Progress,
		Judge:    opts.Judge,
	})
	selector := progression.New(opts.Progression, opts.Registry)

	deps := practice.Deps{
		Engine:   eng,
		Selector: selector,
		Registry: opts.Registry,
	}
	homeDeps := home.Deps{
		Practice: deps,
		Events:   opts.Events,
		Progress: opts.Progress,
	}

	homeFactory := func() screen.Screen {
		return home.New(homeDeps, opts.Judge != nil)
	}

	var initialCmd tea.Cmd
	var root screen.Screen
	if opts.InitialSlug != "" {
		if k, ok := opts.Registry.Get(opts.InitialSlug); ok {
			root = homeFactory()
			scr := practice.New(deps, k)
			initialCmd = func() tea.Msg {
				return router.PushScreenMsg{Screen: scr}
			}
		}
	}
	if root == nil {
		root = welcome.New(homeFactory)
	}

	m := AppModel{
		router:     router.New(root),
		opts:       opts,
		progress:   opts.Progress,
		initialCmd: initialCmd,
		depth:      1,
		total:      opts.Registry.Count(),
	}
	return m
}

// loadCounts refreshes the header's completed/total kata counts.
func (m AppModel) loadCounts() tea.Cmd {
	repo := m.progress
	reg := m.opts.Registry
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		rows, err := repo.All(context.Background())
		if err != nil {
			return nil
		}
		completed := 0
		for _, row := range rows {
			if row.Completed {
				completed++
			}
		}
		return progressCountsMsg{completed: completed, total: reg.Count()}
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.initialCmd, m.loadCounts())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case progressCountsMsg:
		m.completed = msg.completed
		m.total = msg.total
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)

	// A depth change means a screen was entered or left; progress may
	// have moved underneath the header.
	if d := m.router.Depth(); d != m.depth {
		m.depth = d
		return m, tea.Batch(cmd, m.loadCounts())
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
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

	header := layout.RenderHeader(title, m.completed, m.total, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
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
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
