// Package home is the main menu of the application.
package home

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/router"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screen"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/browser"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/history"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/placeholder"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/practice"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/components"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/theme"
)

// Deps carries everything the home screen and its children need.
type Deps struct {
	Practice practice.Deps
	Events   store.EventRepo
	Progress store.ProgressRepo
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu           components.Menu
	kataCount      int
	completedCount int
	attemptCount   int
	judgeReady     bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps, judgeReady bool) *HomeScreen {
	kataCount := deps.Practice.Registry.Count()

	var completedCount, attemptCount int
	if deps.Progress != nil {
		if rows, err := deps.Progress.All(context.Background()); err == nil {
			for _, row := range rows {
				if row.Completed {
					completedCount++
				}
				attemptCount += row.Attempts
			}
		}
	}

	items := []components.MenuItem{
		{Label: "BROWSE KATAS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browser.New(deps.Practice, deps.Progress)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if deps.Events == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:           components.NewMenu(items),
		kataCount:      kataCount,
		completedCount: completedCount,
		attemptCount:   attemptCount,
		judgeReady:     judgeReady,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("C O D E R I L")
	sections = append(sections, title)

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("kata practice in your terminal")
	sections = append(sections, tagline)

	sections = append(sections, "")
	sections = append(sections, h.renderStats())
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	stat := func(label string, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	}

	judge := lipgloss.NewStyle().Foreground(theme.Error).Render("judge off")
	if h.judgeReady {
		judge = lipgloss.NewStyle().Foreground(theme.Success).Render("judge ready")
	}

	parts := []string{
		stat("katas", strconv.Itoa(h.kataCount)),
		stat("completed", strconv.Itoa(h.completedCount)),
		stat("attempts", strconv.Itoa(h.attemptCount)),
		judge,
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  │  "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
