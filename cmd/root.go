package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/registry"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "coderil",
	Short: "Kata practice in your terminal",
	Long:  "Coderil — a desktop kata trainer: code, quiz, and explanation exercises with AI-judged rubrics and automatic progression.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODERIL_DB env var)")
	rootCmd.PersistentFlags().String("katas", "", "Path to the kata catalog directory (overrides CODERIL_KATAS env var)")
	rootCmd.Flags().Bool("auto-continue", false, "Advance to the next kata automatically after a pass")
	rootCmd.Flags().Duration("continue-delay", 0, "Delay before the automatic advance (default 3s)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(katasCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(judgeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CODERIL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveKataDir returns the catalog root using --katas flag (highest
// priority), then CODERIL_KATAS env var, then ./katas.
func resolveKataDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("katas"); p != "" {
		return p, nil
	}
	if p := os.Getenv("CODERIL_KATAS"); p != "" {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(wd, "katas"), nil
}

// openRegistry scans the catalog and reports skipped kata directories.
func openRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	dir, err := resolveKataDir(cmd)
	if err != nil {
		return nil, err
	}
	reg, err := registry.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("scan kata catalog %s: %w", dir, err)
	}
	for _, loadErr := range reg.LoadErrors() {
		fmt.Fprintln(os.Stderr, "warning:", loadErr)
	}
	return reg, nil
}
