package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
	"github.com/geode-sdk/geode-cli/internal/profile"
)

var setupProfileName string

func init() {
	configSetupCmd.Flags().StringVar(&setupProfileName, "name", "",
		"profile name (default: the installation directory's name)")
	configCmd.AddCommand(configSetupCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the geode configuration",
	Long: `Manage the persisted geode configuration document.

The document lives at <platform-root>/config.json and holds the profile
collection, the active profile selector, and global flags. Unknown
fields written by newer versions are preserved.`,
	Example: `  # Create the first profile
  geode config setup /games/GeometryDash

  # Show where the config document lives
  geode config path`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configSetupCmd = &cobra.Command{
	Use:   "setup <path>",
	Short: "Set up Geode for an installation",
	Long: `Create a profile for the installation at the given path and make it
current if no profile was active. This also materializes the config
document and the platform root directory on first run.

Examples:
  geode config setup /games/GeometryDash
  geode config setup /games/GDPS --name GDPS`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetup,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config document location",
	RunE:  runConfigPath,
}

func runConfigSetup(cmd *cobra.Command, args []string) error {
	m, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return geodeerrors.NewUserError(
			errors.Newf("%q is not an existing directory", path),
			"pass the root directory of the installation")
	}

	name := setupProfileName
	if name == "" {
		name = filepath.Base(path)
	}

	if err := m.AddProfile(profile.New(name, path)); err != nil {
		return geodeerrors.NewUserError(err, "pick a different name with --name")
	}
	if err := m.Save(); err != nil {
		return geodeerrors.NewSystemError(err, "check permissions on the Geode directory")
	}

	done(cmd.OutOrStdout(), "Set up profile '%s' at %s", name, path)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	m, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Path())
	return nil
}
