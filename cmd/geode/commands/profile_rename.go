package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
)

func init() {
	profileCmd.AddCommand(profileRenameCmd)
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a profile",
	Long: `Rename a profile in place.

Renaming does not move any files; only the profile's name changes.

Examples:
  geode profile rename Main Stable`,
	Args: cobra.ExactArgs(2),
	RunE: runProfileRename,
}

func runProfileRename(cmd *cobra.Command, args []string) error {
	m, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	oldName, newName := args[0], args[1]

	if err := m.RenameProfile(oldName, newName); err != nil {
		// A taken name is reported and leaves state unchanged; a
		// missing profile means the caller skipped validation.
		if errors.Is(err, geodeerrors.ErrProfileNameTaken) {
			fail(cmd.OutOrStdout(), "The name '%s' is already taken!", newName)
			return nil
		}
		return geodeerrors.NewUserError(err, "run `geode profile list` to see available profiles")
	}

	if err := m.Save(); err != nil {
		return geodeerrors.NewSystemError(err, "check permissions on the Geode directory")
	}

	done(cmd.OutOrStdout(), "Successfully renamed '%s' to '%s'", oldName, newName)
	return nil
}
