package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/app"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/judge"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/llm"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/progression"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

// runApp opens the store and catalog, builds dependencies, and launches
// the TUI. An empty initialSlug starts on the home menu.
func runApp(cmd *cobra.Command, initialSlug string) error {
	ctx := cmd.Context()

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	if initialSlug != "" {
		if _, ok := reg.Get(initialSlug); !ok {
			return fmt.Errorf("kata %q not found in catalog", initialSlug)
		}
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Registry:    reg,
		Events:      eventRepo,
		Progress:    st.ProgressRepo(),
		Progression: progressionSettings(cmd),
		InitialSlug: initialSlug,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Explain and template katas will be ungraded.")
	} else {
		opts.Judge = judge.NewService(provider, judge.DefaultConfig())
	}

	return app.Run(opts)
}

// progressionSettings builds auto-continue settings from the command's
// flags, falling back to defaults where flags are absent.
func progressionSettings(cmd *cobra.Command) progression.Settings {
	settings := progression.DefaultSettings()
	if on, err := cmd.Flags().GetBool("auto-continue"); err == nil {
		settings.Enabled = on
	}
	if d, err := cmd.Flags().GetDuration("continue-delay"); err == nil && d > 0 {
		settings.Delay = d
	}
	return settings
}
