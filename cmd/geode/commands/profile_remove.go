package commands

import (
	"github.com/spf13/cobra"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
)

func init() {
	profileCmd.AddCommand(profileRemoveCmd)
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a profile",
	Long: `Remove a profile from the configuration.

The installation directory itself is left untouched. If the removed
profile was current, the first remaining profile becomes current.

Examples:
  geode profile remove Old`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileRemove,
}

func runProfileRemove(cmd *cobra.Command, args []string) error {
	m, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := args[0]

	if err := m.RemoveProfile(name); err != nil {
		return geodeerrors.NewUserError(err, "run `geode profile list` to see available profiles")
	}
	if err := m.Save(); err != nil {
		return geodeerrors.NewSystemError(err, "check permissions on the Geode directory")
	}

	done(cmd.OutOrStdout(), "Removed profile '%s'", name)
	return nil
}
