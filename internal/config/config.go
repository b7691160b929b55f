package config

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/geode-sdk/geode-cli/internal/profile"
)

// JSON field names of the persisted document (hyphenated form).
const (
	fieldCurrentProfile   = "current-profile"
	fieldProfiles         = "profiles"
	fieldDefaultDeveloper = "default-developer"
	fieldSDKNightly       = "sdk-nightly"
)

// Config is the root persisted settings document.
//
// Profiles are held by pointer: a profile looked up through the manager
// stays valid and reflects later in-place mutation (such as a rename)
// made through any other reference to the same entry.
type Config struct {
	// CurrentProfile names the active profile, or is empty if none is
	// selected.
	CurrentProfile string

	// Profiles is the ordered profile collection. Name uniqueness is a
	// soft invariant, enforced only when profiles are added or renamed.
	Profiles []*profile.Profile

	// DefaultDeveloper is an opaque passthrough used by other commands.
	DefaultDeveloper string

	// SDKNightly is an opaque passthrough flag.
	SDKNightly bool

	// Extra holds unrecognized top-level fields, preserved across
	// load/save.
	Extra map[string]json.RawMessage
}

// New returns an empty configuration: no profiles, no current profile.
func New() *Config {
	return &Config{}
}

// optString marshals s the way the document historically stored
// optional strings: null when unset.
func optString(s string) (json.RawMessage, error) {
	if s == "" {
		return json.RawMessage("null"), nil
	}
	return json.Marshal(s)
}

// MarshalJSON merges the recognized fields into the open bag so unknown
// fields written by newer versions survive.
func (c *Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.Extra)+4)
	for k, v := range c.Extra {
		out[k] = v
	}

	current, err := optString(c.CurrentProfile)
	if err != nil {
		return nil, err
	}
	out[fieldCurrentProfile] = current

	profiles := c.Profiles
	if profiles == nil {
		profiles = []*profile.Profile{}
	}
	rawProfiles, err := json.Marshal(profiles)
	if err != nil {
		return nil, err
	}
	out[fieldProfiles] = rawProfiles

	developer, err := optString(c.DefaultDeveloper)
	if err != nil {
		return nil, err
	}
	out[fieldDefaultDeveloper] = developer

	nightly, err := json.Marshal(c.SDKNightly)
	if err != nil {
		return nil, err
	}
	out[fieldSDKNightly] = nightly

	return json.Marshal(out)
}

// UnmarshalJSON decodes the recognized fields and stashes everything
// else in Extra. The profiles list and the sdk-nightly flag are
// required; a document missing either does not parse under the current
// schema, which is what triggers the legacy-schema fallback on load.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	profilesRaw, ok := raw[fieldProfiles]
	if !ok {
		return errors.Newf("config: missing required field %q", fieldProfiles)
	}
	if err := json.Unmarshal(profilesRaw, &c.Profiles); err != nil {
		return errors.Wrapf(err, "config: field %q", fieldProfiles)
	}

	nightlyRaw, ok := raw[fieldSDKNightly]
	if !ok {
		return errors.Newf("config: missing required field %q", fieldSDKNightly)
	}
	if err := json.Unmarshal(nightlyRaw, &c.SDKNightly); err != nil {
		return errors.Wrapf(err, "config: field %q", fieldSDKNightly)
	}

	// Optional fields tolerate both absence and null.
	c.CurrentProfile = ""
	if v, ok := raw[fieldCurrentProfile]; ok && string(v) != "null" {
		if err := json.Unmarshal(v, &c.CurrentProfile); err != nil {
			return errors.Wrapf(err, "config: field %q", fieldCurrentProfile)
		}
	}
	c.DefaultDeveloper = ""
	if v, ok := raw[fieldDefaultDeveloper]; ok && string(v) != "null" {
		if err := json.Unmarshal(v, &c.DefaultDeveloper); err != nil {
			return errors.Wrapf(err, "config: field %q", fieldDefaultDeveloper)
		}
	}

	delete(raw, fieldCurrentProfile)
	delete(raw, fieldProfiles)
	delete(raw, fieldDefaultDeveloper)
	delete(raw, fieldSDKNightly)
	if len(raw) > 0 {
		c.Extra = raw
	} else {
		c.Extra = nil
	}

	return nil
}
