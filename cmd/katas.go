package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

var katasCmd = &cobra.Command{
	Use:   "katas",
	Short: "List the kata catalog (optionally filtered)",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}

		filters, err := filtersFromFlags(cmd)
		if err != nil {
			return err
		}

		var katas []*kata.Kata
		for _, k := range reg.List() {
			if filters.Match(k) {
				katas = append(katas, k)
			}
		}

		if len(katas) == 0 {
			fmt.Println("No katas match.")
			return nil
		}

		fmt.Printf("%-28s  %-36s  %-15s  %-8s  %s\n",
			"Slug", "Title", "Type", "Diff", "Language")
		fmt.Println(strings.Repeat("─", 100))

		for _, k := range katas {
			title := k.Title
			if len(title) > 36 {
				title = title[:33] + "..."
			}
			fmt.Printf("%-28s  %-36s  %-15s  %-8s  %s\n",
				k.Slug, title, k.Type, k.Difficulty, k.Language)
		}

		fmt.Printf("\n%d katas\n", len(katas))
		return nil
	},
}

// filtersFromFlags builds selection filters from the command's flag set.
func filtersFromFlags(cmd *cobra.Command) (kata.Filters, error) {
	var f kata.Filters

	if vals, _ := cmd.Flags().GetStringSlice("type"); len(vals) > 0 {
		for _, v := range vals {
			t := kata.Type(v)
			if !validType(t) {
				return f, fmt.Errorf("unknown kata type %q", v)
			}
			f.Types = append(f.Types, t)
		}
	}
	if vals, _ := cmd.Flags().GetStringSlice("difficulty"); len(vals) > 0 {
		for _, v := range vals {
			switch d := kata.Difficulty(v); d {
			case kata.DifficultyEasy, kata.DifficultyMedium, kata.DifficultyHard:
				f.Difficulties = append(f.Difficulties, d)
			default:
				return f, fmt.Errorf("unknown difficulty %q", v)
			}
		}
	}
	f.Languages, _ = cmd.Flags().GetStringSlice("language")
	f.Tags, _ = cmd.Flags().GetStringSlice("tag")
	return f, nil
}

func validType(t kata.Type) bool {
	for _, v := range kata.ValidTypes() {
		if v == t {
			return true
		}
	}
	return false
}

func init() {
	katasCmd.Flags().StringSlice("type", nil, "Filter by kata type (e.g. code, explain, shortform)")
	katasCmd.Flags().StringSlice("difficulty", nil, "Filter by difficulty (easy, medium, hard)")
	katasCmd.Flags().StringSlice("language", nil, "Filter by language (e.g. go, python)")
	katasCmd.Flags().StringSlice("tag", nil, "Filter by tag")
}
