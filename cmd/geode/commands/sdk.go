package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
	"github.com/geode-sdk/geode-cli/internal/sdk"
	"github.com/geode-sdk/geode-cli/pkg/fileutil"
)

func init() {
	sdkCmd.AddCommand(sdkPathCmd)
	sdkCmd.AddCommand(sdkVersionCmd)
	rootCmd.AddCommand(sdkCmd)
}

var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Work with the Geode SDK",
	Long: `Work with the externally-cloned Geode SDK.

The SDK is located through the GEODE_SDK environment variable and
validated by the presence of its VERSION file.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var sdkPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved SDK path",
	RunE:  runSdkPath,
}

var sdkVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the installed SDK version",
	RunE:  runSdkVersion,
}

// resolveSdkPath converts a locator failure into a fatal user error;
// commands that reach this point cannot proceed without the SDK.
func resolveSdkPath() (string, error) {
	path, err := sdk.Locate()
	if err != nil {
		return "", geodeerrors.NewUserError(err, "Run: geode sdk install")
	}
	return path, nil
}

func runSdkPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveSdkPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runSdkVersion(cmd *cobra.Command, _ []string) error {
	path, err := resolveSdkPath()
	if err != nil {
		return err
	}

	data, err := fileutil.ReadFileWithLimit(filepath.Join(path, sdk.MarkerFile))
	if err != nil {
		return geodeerrors.NewSystemError(err, "Run: geode sdk install --reinstall")
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(data)))
	return nil
}
