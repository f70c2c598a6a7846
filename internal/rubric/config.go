package rubric

import "github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"

// FromConfig converts a kata's rubric metadata into threshold form.
// Returns nil for a nil config, which Evaluate treats as ungraded.
func FromConfig(cfg *kata.RubricConfig) *Rubric {
	if cfg == nil {
		return nil
	}
	return &Rubric{
		MinTotal: cfg.MinTotal,
		Mins:     cfg.Mins,
	}
}
