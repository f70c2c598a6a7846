package progression

import (
	"fmt"
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

// Notification is the "continuing to X" banner shown during the delay
// window before an auto-continue switch.
type Notification struct {
	Message   string
	FromKata  string
	ToKata    string
	Timestamp time.Time
}

// CreateNotification builds the banner for a scheduled switch.
func (s *Selector) CreateNotification(from, to *kata.Kata) Notification {
	n := Notification{
		Timestamp: time.Now(),
	}
	if from != nil {
		n.FromKata = from.Slug
	}
	if to != nil {
		n.ToKata = to.Slug
		n.Message = fmt.Sprintf("Passed! Continuing to %q in %s...", to.Title, s.settings.Delay)
	}
	return n
}
