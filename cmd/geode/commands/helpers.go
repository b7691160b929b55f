package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geode-sdk/geode-cli/internal/config"
	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
	"github.com/geode-sdk/geode-cli/internal/logging"
	"github.com/geode-sdk/geode-cli/internal/paths"
)

var (
	doneColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

// done prints a user-facing success message.
func done(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", doneColor.Sprint("✓"), fmt.Sprintf(format, a...))
}

// fail prints a user-facing failure message.
func fail(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", failColor.Sprint("✗"), fmt.Sprintf(format, a...))
}

// rootDir resolves the platform root, honoring the GEODE_CONFIG_DIR
// override (used by tests and unusual setups).
func rootDir() string {
	if dir := viper.GetString("config_dir"); dir != "" {
		return dir
	}
	return paths.Root()
}

// loadConfig loads the configuration for a command, mapping load
// failures onto the exit-code tiers: a corrupt document is a user
// problem, anything else (unreadable root, failed write-back) is a
// system one.
func loadConfig(cmd *cobra.Command) (*config.Manager, error) {
	logger := logging.FromContext(cmd.Context())

	m, err := config.Load(rootDir(), logger)
	if err != nil {
		if errors.Is(err, geodeerrors.ErrCorruptConfig) {
			return nil, geodeerrors.NewConfigError(err)
		}
		return nil, geodeerrors.NewSystemError(err, "check permissions on the Geode directory")
	}
	return m, nil
}
