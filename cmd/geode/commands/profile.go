package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage installation profiles",
	Long: `Manage the named profiles geode knows about.

Each profile points at one Geometry Dash installation. One profile is
"current" and is the one other commands operate on by default.`,
	Example: `  # List profiles
  geode profile list

  # Switch the active profile interactively
  geode profile switch

  # Rename a profile
  geode profile rename Old New`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
