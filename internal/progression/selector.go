// Package progression decides what happens after a passing attempt:
// whether to auto-continue, to which kata, and when the switch fires.
package progression

import (
	"fmt"
	"os"
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

// Catalog is the registry query the selector delegates to.
type Catalog interface {
	// SelectNext returns a random kata matching f, excluding currentSlug,
	// or nil when nothing matches.
	SelectNext(currentSlug string, f kata.Filters) (*kata.Kata, error)
}

// Settings are the user-facing auto-continue knobs.
type Settings struct {
	// Enabled gates the whole feature. Off by default.
	Enabled bool

	// Delay is how long the notification stays up before the switch.
	Delay time.Duration

	// Filters constrain which katas qualify as "next".
	Filters kata.Filters
}

// DefaultSettings returns auto-continue disabled with a 3 second delay.
func DefaultSettings() Settings {
	return Settings{Delay: 3 * time.Second}
}

// Selector holds no persisted state: one decision function plus one
// external query.
type Selector struct {
	settings Settings
	catalog  Catalog
}

// New creates a selector.
func New(settings Settings, catalog Catalog) *Selector {
	if settings.Delay <= 0 {
		settings.Delay = DefaultSettings().Delay
	}
	return &Selector{settings: settings, catalog: catalog}
}

// Settings returns the selector's active settings.
func (s *Selector) Settings() Settings {
	return s.settings
}

// ShouldTrigger reports whether a result warrants auto-continuing: the
// feature must be enabled and the result itself must be a pass. The
// feature flag wins regardless of the result.
func (s *Selector) ShouldTrigger(res grading.Result) bool {
	return s.settings.Enabled && res.Passed
}

// SelectNext queries the catalog for the next kata. A registry failure is
// logged and converted to "no next kata"; the caller's UI state stays
// consistent either way.
func (s *Selector) SelectNext(currentSlug string) *kata.Kata {
	if s.catalog == nil {
		return nil
	}
	next, err := s.catalog.SelectNext(currentSlug, s.settings.Filters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: next-kata selection failed: %v\n", err)
		return nil
	}
	return next
}
