package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/engine"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/judge"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/llm"
)

var judgeCmd = &cobra.Command{
	Use:   "judge <slug>",
	Short: "AI-judge an answer against a kata's rubric (no database)",
	Long: `Send an answer to the configured LLM provider and score it against the
kata's rubric. Reads the answer from --answer or stdin.

This is a stateless developer tool — nothing is recorded. Useful for
evaluating rubric quality and testing judge prompts.`,
	Args: cobra.ExactArgs(1),
	RunE: runJudge,
}

func init() {
	judgeCmd.Flags().String("answer", "", "Path to a file containing the answer (default: stdin)")
}

func runJudge(cmd *cobra.Command, args []string) error {
	slug := args[0]

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	k, ok := reg.Get(slug)
	if !ok {
		return fmt.Errorf("kata %q not found in catalog", slug)
	}
	if !k.Type.IsJudgedType() {
		return fmt.Errorf("kata %q is %s, not an AI-judged kata", slug, k.Type)
	}

	answer, err := readAnswer(cmd)
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("empty answer")
	}

	// No event repo — judging here skips request logging.
	provider, err := llm.NewProviderFromEnv(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	var statement string
	if dir, ok := reg.Dir(slug); ok {
		statement = kata.LoadStatement(dir)
	}

	eng := engine.New(engine.Config{
		Judge: judge.NewService(provider, judge.DefaultConfig()),
	})
	res := eng.JudgeSubmission(cmd.Context(), k, statement, answer)
	printResult(k.Title, res)
	return nil
}

func readAnswer(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("answer"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read answer from stdin: %w", err)
	}
	return string(raw), nil
}
