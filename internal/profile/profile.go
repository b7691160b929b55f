// Package profile defines a named pointer to one Geometry Dash
// installation managed by geode, plus the derived subpaths for
// geode-owned data inside it.
package profile

import (
	"encoding/json"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// JSON field names of the persisted profile document (hyphenated form).
const (
	fieldName   = "name"
	fieldGDPath = "gd-path"
)

// Profile is a named pointer to one external installation.
//
// Unrecognized fields of the on-disk document are kept verbatim in
// Extra and written back on save, so documents produced by newer
// versions survive a load/save cycle.
type Profile struct {
	// Name uniquely identifies the profile within a config.
	// Uniqueness is enforced by callers, not here.
	Name string

	// GDPath is the root of the managed installation.
	GDPath string

	// Extra holds unrecognized fields, preserved across load/save.
	Extra map[string]json.RawMessage
}

// New creates a profile. No uniqueness check is performed; callers
// validate the name against their collection.
func New(name, gdPath string) *Profile {
	return &Profile{
		Name:   name,
		GDPath: gdPath,
	}
}

// GeodeDir returns the directory for geode-managed data inside the
// installation. Pure derivation; the path is not checked for existence.
func (p *Profile) GeodeDir() string {
	return filepath.Join(p.GDPath, "geode")
}

// IndexDir returns the index store directory under GeodeDir.
func (p *Profile) IndexDir() string {
	return filepath.Join(p.GeodeDir(), "index")
}

// ModsDir returns the mods store directory under GeodeDir.
func (p *Profile) ModsDir() string {
	return filepath.Join(p.GeodeDir(), "mods")
}

// MarshalJSON merges the recognized fields back into the open bag so
// the document round-trips without losing unknown fields.
func (p *Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Extra)+2)
	for k, v := range p.Extra {
		out[k] = v
	}

	name, err := json.Marshal(p.Name)
	if err != nil {
		return nil, err
	}
	out[fieldName] = name

	gdPath, err := json.Marshal(p.GDPath)
	if err != nil {
		return nil, err
	}
	out[fieldGDPath] = gdPath

	return json.Marshal(out)
}

// UnmarshalJSON decodes the recognized fields and stashes everything
// else in Extra. Name and gd-path are required; their absence is a
// decode error so callers can distinguish the current schema from the
// legacy one.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	nameRaw, ok := raw[fieldName]
	if !ok {
		return errors.Newf("profile: missing required field %q", fieldName)
	}
	if err := json.Unmarshal(nameRaw, &p.Name); err != nil {
		return errors.Wrapf(err, "profile: field %q", fieldName)
	}

	pathRaw, ok := raw[fieldGDPath]
	if !ok {
		return errors.Newf("profile: missing required field %q", fieldGDPath)
	}
	if err := json.Unmarshal(pathRaw, &p.GDPath); err != nil {
		return errors.Wrapf(err, "profile: field %q", fieldGDPath)
	}

	delete(raw, fieldName)
	delete(raw, fieldGDPath)
	if len(raw) > 0 {
		p.Extra = raw
	} else {
		p.Extra = nil
	}

	return nil
}
