package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/geode-sdk/geode-cli/internal/cli/prompt"
	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
	"github.com/geode-sdk/geode-cli/internal/logging"
	"github.com/geode-sdk/geode-cli/internal/profile"
)

func init() {
	profileCmd.AddCommand(profileSwitchCmd)
}

var profileSwitchCmd = &cobra.Command{
	Use:   "switch [name]",
	Short: "Change the current profile",
	Long: `Make the named profile the current one.

With no argument, pick a profile interactively: a fuzzy finder on a
terminal, a numbered prompt otherwise.

Examples:
  # Switch directly
  geode profile switch Nightly

  # Pick interactively
  geode profile switch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfileSwitch,
}

func runProfileSwitch(cmd *cobra.Command, args []string) error {
	m, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		picked, err := pickProfile(m.Profiles())
		if err != nil {
			if errors.Is(err, prompt.ErrSelectionCancelled) {
				return nil
			}
			return geodeerrors.NewUserError(err, "pass the profile name directly: geode profile switch <name>")
		}
		name = picked.Name
	}

	if err := m.SwitchProfile(name); err != nil {
		return geodeerrors.NewUserError(err, "run `geode profile list` to see available profiles")
	}
	if err := m.Save(); err != nil {
		return geodeerrors.NewSystemError(err, "check permissions on the Geode directory")
	}

	done(cmd.OutOrStdout(), "Now using profile '%s'", name)
	return nil
}

// pickProfile selects a profile interactively. On a terminal it uses a
// fuzzy finder; otherwise it falls back to a numbered prompt so piped
// input still works.
func pickProfile(profiles []*profile.Profile) (*profile.Profile, error) {
	if len(profiles) == 0 {
		return nil, prompt.ErrNoProfiles
	}

	if !logging.IsTTY(os.Stdin) {
		return prompt.NewSelector().SelectProfile(profiles)
	}

	idx, err := fuzzyfinder.Find(
		profiles,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", profiles[i].Name, profiles[i].GDPath)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			p := profiles[i]
			return fmt.Sprintf("Name: %s\nPath: %s\nMods: %s", p.Name, p.GDPath, p.ModsDir())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, prompt.ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return profiles[idx], nil
}
