// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/geode-sdk/geode-cli/internal/profile"
)

// Sentinel errors for profile selection.
var (
	ErrNoProfiles         = errors.New("no profiles to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive profile selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectProfile prompts the user to choose from a list of profiles.
//
// Returns:
//   - ErrNoProfiles if the list is empty
//   - The profile if only one exists (auto-selects without prompting)
//   - The selected profile based on user input
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) SelectProfile(profiles []*profile.Profile) (*profile.Profile, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	// Auto-select if only one profile
	if len(profiles) == 1 {
		return profiles[0], nil
	}

	// Display selection prompt
	fmt.Fprintln(s.writer, "Available profiles:")
	for i, p := range profiles {
		fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, p.Name, p.GDPath)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	// Read user input
	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)

	// Default to first option if empty
	if input == "" {
		return profiles[0], nil
	}

	// Parse selection number
	selection, err := strconv.Atoi(input)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	// Validate range (1-indexed)
	if selection < 1 || selection > len(profiles) {
		return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(profiles))
	}

	return profiles[selection-1], nil
}
