package cmd

import (
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <slug>",
	Short: "Open a kata directly for practice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0])
	},
}

func init() {
	practiceCmd.Flags().Bool("auto-continue", false, "Advance to the next kata automatically after a pass")
	practiceCmd.Flags().Duration("continue-delay", 0, "Delay before the automatic advance (default 3s)")
}
