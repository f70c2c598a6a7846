package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/engine"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/execution"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

var submitCmd = &cobra.Command{
	Use:   "submit <slug>",
	Short: "Score a code kata from sandbox runner output",
	Long: `Combine the public and hidden test suite results written by the sandbox
runner into one scored attempt, record it, and print the verdict.

The public suite contributes 30% of the score, the hidden suite 70%.
Passing requires every suite to succeed regardless of the blended score.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().String("public", "", "Path to the public suite result JSON (required)")
	submitCmd.Flags().String("hidden", "", "Path to the hidden suite result JSON (required)")
	submitCmd.Flags().Bool("no-save", false, "Print the verdict without recording the attempt")
	_ = submitCmd.MarkFlagRequired("public")
	_ = submitCmd.MarkFlagRequired("hidden")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	slug := args[0]

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	k, ok := reg.Get(slug)
	if !ok {
		return fmt.Errorf("kata %q not found in catalog", slug)
	}
	if !k.Type.IsCodeType() {
		return fmt.Errorf("kata %q is %s, not a code kata", slug, k.Type)
	}

	publicPath, _ := cmd.Flags().GetString("public")
	hiddenPath, _ := cmd.Flags().GetString("hidden")

	public, err := execution.LoadResult(publicPath)
	if err != nil {
		return fmt.Errorf("public suite: %w", err)
	}
	hidden, err := execution.LoadResult(hiddenPath)
	if err != nil {
		return fmt.Errorf("hidden suite: %w", err)
	}

	noSave, _ := cmd.Flags().GetBool("no-save")

	var eng *engine.Engine
	if noSave {
		eng = engine.New(engine.Config{})
	} else {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		eng = engine.New(engine.Config{
			Events:   st.EventRepo(),
			Progress: st.ProgressRepo(),
		})
	}

	res := eng.CombineResults(public, hidden)
	printResult(k.Title, res)

	if !noSave {
		if _, err := eng.Record(cmd.Context(), k, res); err != nil {
			fmt.Fprintln(os.Stderr, "warning: attempt not saved:", err)
		}
	}
	return nil
}

// printResult renders a grading result for terminal output.
func printResult(title string, res grading.Result) {
	verdict := "FAILED"
	switch {
	case res.Ungraded:
		verdict = "UNGRADED"
	case res.Passed:
		verdict = "PASSED"
	}

	fmt.Printf("%s — %s  (score %.1f)\n", title, verdict, res.Score)
	if res.Message != "" {
		fmt.Println(res.Message)
	}

	for _, sub := range res.SubResults {
		mark := "✗"
		if sub.Passed {
			mark = "✓"
		}
		line := fmt.Sprintf("  %s %s", mark, sub.Name)
		if sub.PointsPossible > 0 {
			line += fmt.Sprintf("  (%.0f/%.0f)", sub.PointsEarned, sub.PointsPossible)
		}
		if sub.Message != "" {
			line += "  — " + sub.Message
		}
		fmt.Println(line)
	}
}
