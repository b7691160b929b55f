package commands

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
	"github.com/geode-sdk/geode-cli/internal/profile"
)

func init() {
	profileCmd.AddCommand(profileAddCmd)
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Add a profile",
	Long: `Add a profile pointing at an existing installation directory.

The directory's contents are not inspected; only its existence is
checked. The first profile added becomes the current one.

Examples:
  geode profile add Stable /games/GeometryDash`,
	Args: cobra.ExactArgs(2),
	RunE: runProfileAdd,
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	m, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name, path := args[0], args[1]

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return geodeerrors.NewUserError(
			errors.Newf("%q is not an existing directory", path),
			"pass the root directory of the installation")
	}

	if err := m.AddProfile(profile.New(name, path)); err != nil {
		if errors.Is(err, geodeerrors.ErrProfileNameTaken) {
			fail(cmd.OutOrStdout(), "The name '%s' is already taken!", name)
			return nil
		}
		return geodeerrors.NewUserError(err, "run `geode profile list` to see existing profiles")
	}

	if err := m.Save(); err != nil {
		return geodeerrors.NewSystemError(err, "check permissions on the Geode directory")
	}

	done(cmd.OutOrStdout(), "Added profile '%s' at %s", name, path)
	return nil
}
