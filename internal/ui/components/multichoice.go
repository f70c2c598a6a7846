package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/theme"
)

// MultiChoice is an option selector for multiple-choice katas. In
// single-select mode Enter submits the highlighted option; in
// multi-select mode Space toggles options and Enter submits the set.
type MultiChoice struct {
	Options       []kata.Option
	AllowMultiple bool
	Cursor        int
	Checked       map[string]bool
	Submitted     bool

	// CorrectIDs is revealed only after submission.
	CorrectIDs map[string]bool
}

// NewMultiChoice creates a selector for the given options.
func NewMultiChoice(cfg *kata.MultipleChoiceConfig) MultiChoice {
	correct := make(map[string]bool, len(cfg.CorrectAnswers))
	for _, id := range cfg.CorrectAnswers {
		correct[id] = true
	}
	return MultiChoice{
		Options:       cfg.Options,
		AllowMultiple: cfg.AllowMultiple,
		Checked:       make(map[string]bool),
		CorrectIDs:    correct,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case " ", "space":
		if m.AllowMultiple && m.Cursor < len(m.Options) {
			id := m.Options[m.Cursor].ID
			m.Checked[id] = !m.Checked[id]
		}
	}

	return m, nil
}

// Selections returns the chosen option IDs. In single-select mode this is
// the highlighted option.
func (m MultiChoice) Selections() []string {
	if !m.AllowMultiple {
		if m.Cursor < len(m.Options) {
			return []string{m.Options[m.Cursor].ID}
		}
		return nil
	}
	var ids []string
	for _, opt := range m.Options {
		if m.Checked[opt.ID] {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// View renders the option list.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Submitted {
			prefix = "▸ "
		}

		box := ""
		if m.AllowMultiple {
			if m.Checked[opt.ID] {
				box = "[x] "
			} else {
				box = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%s", prefix, box, opt.Text)

		switch {
		case m.Submitted && m.CorrectIDs[opt.ID]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Submitted && m.chosen(opt.ID):
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	hint := "↑↓ move, Enter submit"
	if m.AllowMultiple {
		hint = "↑↓ move, Space toggle, Enter submit"
	}
	s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(hint)
	return s
}

func (m MultiChoice) chosen(id string) bool {
	if m.AllowMultiple {
		return m.Checked[id]
	}
	return m.Cursor < len(m.Options) && m.Options[m.Cursor].ID == id
}
