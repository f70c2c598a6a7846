package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-kata progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		rows, err := st.ProgressRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("query progress: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-28s  %6s  %6s  %8s  %9s  %s\n",
			"Kata", "Best", "Last", "Attempts", "Pass Rate", "Done")
		fmt.Println(strings.Repeat("─", 75))

		var completed int
		for _, row := range rows {
			rate, _, err := st.EventRepo().PassRate(ctx, row.Slug)
			if err != nil {
				return fmt.Errorf("pass rate for %s: %w", row.Slug, err)
			}
			done := ""
			if row.Completed {
				done = "✓"
				completed++
			}
			fmt.Printf("%-28s  %6.1f  %6.1f  %8d  %8.0f%%  %s\n",
				row.Slug, row.BestScore, row.LastScore, row.Attempts, rate*100, done)
		}

		fmt.Printf("\n%d katas attempted, %d completed\n", len(rows), completed)
		return nil
	},
}
