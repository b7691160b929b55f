package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/geode-sdk/geode-cli/internal/config"
)

var profileListOutput string

func init() {
	profileListCmd.Flags().StringVarP(&profileListOutput, "output", "o", "text",
		"output format: text, json, yaml")
	profileCmd.AddCommand(profileListCmd)
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Long: `List all profiles and mark the current one.

Examples:
  # Human-readable table
  geode profile list

  # Machine-readable output
  geode profile list --output json
  geode profile list --output yaml`,
	RunE: runProfileList,
}

// profileInfo is the machine-readable shape of one profile row.
type profileInfo struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Current bool   `json:"current" yaml:"current"`
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	m, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runProfileListWithWriter(cmd.OutOrStdout(), m)
}

// runProfileListWithWriter allows injecting a writer for testing.
func runProfileListWithWriter(w io.Writer, m *config.Manager) error {
	current := m.CurrentProfileName()

	rows := make([]profileInfo, 0, len(m.Profiles()))
	for _, p := range m.Profiles() {
		rows = append(rows, profileInfo{
			Name:    p.Name,
			Path:    p.GDPath,
			Current: p.Name == current,
		})
	}

	switch profileListOutput {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rows), "encoding profile list")

	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return errors.Wrap(err, "encoding profile list")
		}
		_, err = w.Write(data)
		return err

	case "text":
		if len(rows) == 0 {
			fmt.Fprintln(w, "No profiles. Run `geode config setup` to create one.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, row := range rows {
			marker := " "
			if row.Current {
				marker = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", marker, row.Name, row.Path)
		}
		return tw.Flush()

	default:
		return errors.Newf("unknown output format %q (valid: text, json, yaml)", profileListOutput)
	}
}
