// Package browser lists the kata catalog and opens katas for practice.
package browser

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/router"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screen"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/practice"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/layout"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/theme"
)

type progressLoadedMsg struct {
	Rows map[string]store.ProgressSnapshot
	Err  error
}

type reloadedMsg struct {
	Err error
}

// BrowserScreen lists the catalog with per-kata progress markers.
type BrowserScreen struct {
	deps     practice.Deps
	progress store.ProgressRepo

	katas    []*kata.Kata
	rows     map[string]store.ProgressSnapshot
	selected int
	errMsg   string
}

var _ screen.Screen = (*BrowserScreen)(nil)
var _ screen.KeyHintProvider = (*BrowserScreen)(nil)

// New creates a browser over the registry carried in deps.
func New(deps practice.Deps, progress store.ProgressRepo) *BrowserScreen {
	return &BrowserScreen{
		deps:     deps,
		progress: progress,
		katas:    deps.Registry.List(),
		rows:     make(map[string]store.ProgressSnapshot),
	}
}

func (s *BrowserScreen) Init() tea.Cmd {
	return s.loadProgress()
}

func (s *BrowserScreen) loadProgress() tea.Cmd {
	repo := s.progress
	return func() tea.Msg {
		if repo == nil {
			return progressLoadedMsg{Rows: map[string]store.ProgressSnapshot{}}
		}
		all, err := repo.All(context.Background())
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		rows := make(map[string]store.ProgressSnapshot, len(all))
		for _, p := range all {
			rows[p.Slug] = p
		}
		return progressLoadedMsg{Rows: rows}
	}
}

func (s *BrowserScreen) Title() string {
	return "Katas"
}

func (s *BrowserScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Practice"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "r", Description: "Rescan"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BrowserScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.rows = msg.Rows
		return s, nil

	case reloadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.katas = s.deps.Registry.List()
		if s.selected >= len(s.katas) {
			s.selected = len(s.katas) - 1
		}
		if s.selected < 0 {
			s.selected = 0
		}
		return s, s.loadProgress()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.katas)-1 {
				s.selected++
			}
			return s, nil
		case "r":
			reg := s.deps.Registry
			return s, func() tea.Msg {
				return reloadedMsg{Err: reg.Reload()}
			}
		case "enter":
			if s.selected < len(s.katas) {
				k := s.katas[s.selected]
				scr := practice.New(s.deps, k)
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: scr}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *BrowserScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if len(s.katas) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No katas found. Point --katas at a kata directory.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, k := range s.katas {
		marker := "  "
		if row, ok := s.rows[k.Slug]; ok {
			if row.Completed {
				marker = lipgloss.NewStyle().Foreground(theme.Success).Render("✔ ")
			} else {
				marker = lipgloss.NewStyle().Foreground(theme.TextDim).Render("· ")
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s%-32s  %-15s  %-8s  %s",
			prefix, marker, truncate(k.Title, 32), k.Type, k.Difficulty, k.Language)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if i == s.selected {
			if row, ok := s.rows[k.Slug]; ok && row.Attempts > 0 {
				detail := fmt.Sprintf("    best %.0f  last %.0f  %d attempt",
					row.BestScore, row.LastScore, row.Attempts)
				if row.Attempts != 1 {
					detail += "s"
				}
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
