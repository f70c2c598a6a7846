package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [slug]",
	Short: "List recent attempts, optionally for one kata",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		slug := ""
		if len(args) == 1 {
			slug = args[0]
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

		attempts, err := st.EventRepo().Attempts(cmd.Context(), slug, limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-28s  %-15s  %6s  %s\n",
			"Timestamp", "Kata", "Type", "Score", "Pass")
		fmt.Println(strings.Repeat("─", 80))

		for _, a := range attempts {
			mark := "✗"
			if a.Passed {
				mark = "✓"
			}
			fmt.Printf("%-19s  %-28s  %-15s  %6.1f  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.Slug, a.KataType, a.Score, mark)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
