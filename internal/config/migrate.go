package config

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/geode-sdk/geode-cli/internal/profile"
)

// legacyExeSuffix is stripped from installation executables when
// deriving profile names. Only Windows executables carried a suffix.
const legacyExeSuffix = ".exe"

// LegacyInstallation is one entry of the pre-profile configuration
// schema. It is read-only: once migrated, the legacy document is
// superseded permanently.
type LegacyInstallation struct {
	Path       string
	Executable string
}

// UnmarshalJSON requires both fields, matching the strictness of the
// schema this format was written with.
func (i *LegacyInstallation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Path       *string `json:"path"`
		Executable *string `json:"executable"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Path == nil {
		return errors.New("legacy installation: missing required field \"path\"")
	}
	if raw.Executable == nil {
		return errors.New("legacy installation: missing required field \"executable\"")
	}
	i.Path = *raw.Path
	i.Executable = *raw.Executable
	return nil
}

// LegacyConfig is the older, index-based configuration schema. It is
// only ever deserialized, as a fallback when a document does not parse
// under the current schema.
type LegacyConfig struct {
	DefaultInstallation int
	WorkingInstallation *int
	Installations       []LegacyInstallation
	DefaultDeveloper    string
}

// UnmarshalJSON requires default-installation. A current-schema
// document lacks it, so probing a modern document as legacy fails
// instead of silently succeeding.
func (c *LegacyConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		DefaultInstallation *int                 `json:"default-installation"`
		WorkingInstallation *int                 `json:"working-installation"`
		Installations       []LegacyInstallation `json:"installations"`
		DefaultDeveloper    *string              `json:"default-developer"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.DefaultInstallation == nil {
		return errors.New("legacy config: missing required field \"default-installation\"")
	}
	c.DefaultInstallation = *raw.DefaultInstallation
	c.WorkingInstallation = raw.WorkingInstallation
	c.Installations = raw.Installations
	if raw.DefaultDeveloper != nil {
		c.DefaultDeveloper = *raw.DefaultDeveloper
	}
	return nil
}

// Migrate converts the legacy document into the current schema.
//
// The transformation is total: absent optional fields degrade to empty
// defaults. Each installation becomes a profile named after its
// executable with a trailing ".exe" stripped, order preserved. The
// current profile is the one at the working-installation index if
// present, else the default-installation index; an out-of-range index
// leaves it empty rather than failing.
func (c *LegacyConfig) Migrate() *Config {
	profiles := make([]*profile.Profile, 0, len(c.Installations))
	for _, inst := range c.Installations {
		name := strings.TrimSuffix(inst.Executable, legacyExeSuffix)
		profiles = append(profiles, profile.New(name, inst.Path))
	}

	idx := c.DefaultInstallation
	if c.WorkingInstallation != nil {
		idx = *c.WorkingInstallation
	}

	current := ""
	if idx >= 0 && idx < len(profiles) {
		current = profiles[idx].Name
	}

	return &Config{
		CurrentProfile:   current,
		Profiles:         profiles,
		DefaultDeveloper: c.DefaultDeveloper,
		SDKNightly:       false,
	}
}
