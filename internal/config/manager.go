package config

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
	"github.com/geode-sdk/geode-cli/internal/paths"
	"github.com/geode-sdk/geode-cli/internal/profile"
	"github.com/geode-sdk/geode-cli/pkg/fileutil"
)

// Manager owns the single in-memory Config of the process and the root
// directory it is persisted under.
//
// Profile entries are shared by pointer between the collection and any
// looked-up reference; the manager's lock gives single-writer,
// multiple-reader discipline over them. Nothing protects the on-disk
// document against concurrent process instances: the last writer wins.
type Manager struct {
	mu   sync.RWMutex
	root string
	log  *slog.Logger
	cfg  *Config
}

// Load reads, validates, repairs, and re-persists the configuration
// document under root. It is the central initialization routine of the
// CLI and fails only when a document exists but cannot be parsed under
// either schema, or when it cannot be written back.
//
// If the root directory does not exist, setup has never run: a fresh
// empty configuration is returned without touching disk. If the
// document is missing, a fresh configuration is created and persisted.
// A document in the legacy schema is migrated and normalized on disk.
//
// After loading, a current-profile that does not resolve to an existing
// profile is reset to the first profile. That repair is in-memory only;
// it reaches disk on the next explicit Save.
func Load(root string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{root: root, log: logger, cfg: New()}

	if !paths.Exists(root) {
		logger.Warn("It seems you don't have Geode installed. Some operations will not work")
		logger.Warn("You can setup Geode using `geode config setup`")
		return m, nil
	}

	path := paths.ConfigPath(root)
	if !paths.Exists(path) {
		logger.Info("Setup Geode using `geode config setup`")
	} else {
		data, err := fileutil.ReadFileWithLimit(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config.json")
		}
		cfg, err := m.parse(data)
		if err != nil {
			return nil, err
		}
		m.cfg = cfg
	}

	// Persisting here both materializes a freshly created empty config
	// and normalizes a migrated one into the current schema on disk.
	if err := m.Save(); err != nil {
		return nil, err
	}

	if len(m.cfg.Profiles) == 0 {
		logger.Warn("No Geode profiles found! Some operations will be unavailable.")
		logger.Warn("Setup Geode using `geode config setup`")
	} else if m.findProfile(m.cfg.CurrentProfile) == nil {
		m.cfg.CurrentProfile = m.cfg.Profiles[0].Name
	}

	return m, nil
}

// parse attempts the current schema first and falls back to migrating
// the legacy schema. The returned error carries the current-schema
// parse failure, which is the diagnostic worth showing.
func (m *Manager) parse(data []byte) (*Config, error) {
	var cfg Config
	err := json.Unmarshal(data, &cfg)
	if err == nil {
		return &cfg, nil
	}

	var legacy LegacyConfig
	if legacyErr := json.Unmarshal(data, &legacy); legacyErr == nil {
		m.log.Info("Migrating old config.json")
		return legacy.Migrate(), nil
	}

	return nil, errors.Wrap(geodeerrors.ErrCorruptConfig, err.Error())
}

// Root returns the platform root directory the manager persists under.
func (m *Manager) Root() string {
	return m.root
}

// Path returns the location of the configuration document.
func (m *Manager) Path() string {
	return paths.ConfigPath(m.root)
}

// findProfile returns the first profile with the given name, or nil.
// Callers must hold the lock.
func (m *Manager) findProfile(name string) *profile.Profile {
	if name == "" {
		return nil
	}
	for _, p := range m.cfg.Profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Profile returns the first profile whose name matches, or nil. An
// empty name means "no profile given" and also yields nil; both are
// valid, non-error outcomes.
func (m *Manager) Profile(name string) *profile.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findProfile(name)
}

// CurrentProfile resolves the active profile. Failure means the
// empty-profile case was not handled earlier by the caller; it is an
// invariant violation, not a recoverable condition.
func (m *Manager) CurrentProfile() (*profile.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p := m.findProfile(m.cfg.CurrentProfile); p != nil {
		return p, nil
	}
	return nil, geodeerrors.ErrNoCurrentProfile
}

// CurrentProfileName returns the active profile selector, which may be
// empty or dangling.
func (m *Manager) CurrentProfileName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.CurrentProfile
}

// Profiles returns a snapshot of the profile collection. The entries
// are shared pointers; the slice itself is a copy.
func (m *Manager) Profiles() []*profile.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*profile.Profile, len(m.cfg.Profiles))
	copy(out, m.cfg.Profiles)
	return out
}

// DefaultDeveloper returns the opaque default-developer passthrough.
func (m *Manager) DefaultDeveloper() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.DefaultDeveloper
}

// SDKNightly returns the opaque sdk-nightly passthrough flag.
func (m *Manager) SDKNightly() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.SDKNightly
}

// Save serializes the entire configuration, including preserved unknown
// fields, to the document path, fully replacing prior content. The root
// directory is created first if necessary.
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := paths.EnsureDir(m.root, 0); err != nil {
		return errors.Wrap(err, "creating Geode directory")
	}
	if err := fileutil.AtomicWriteJSON(paths.ConfigPath(m.root), m.cfg); err != nil {
		return errors.Wrap(err, "saving config.json")
	}
	return nil
}

// RenameProfile renames oldName to newName in place.
//
// A missing oldName is a caller error (existence must be validated
// beforehand) and a conflicting newName is a reported, recoverable
// failure that leaves state unchanged. The active profile selector is
// deliberately not updated when the renamed profile is the current one;
// the dangling selector is repaired on the next Load. Callers persist
// with Save.
func (m *Manager) RenameProfile(oldName, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.findProfile(oldName)
	if p == nil {
		return errors.Wrapf(geodeerrors.ErrProfileNotFound, "profile named %q does not exist", oldName)
	}
	if m.findProfile(newName) != nil {
		return errors.Wrapf(geodeerrors.ErrProfileNameTaken, "the name %q is already taken", newName)
	}

	p.Name = newName
	return nil
}

// AddProfile appends a profile to the collection, rejecting duplicate
// names. If no profile was active, the new one becomes current.
// Callers persist with Save.
func (m *Manager) AddProfile(p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findProfile(p.Name) != nil {
		return errors.Wrapf(geodeerrors.ErrProfileNameTaken, "the name %q is already taken", p.Name)
	}

	m.cfg.Profiles = append(m.cfg.Profiles, p)
	if m.cfg.CurrentProfile == "" {
		m.cfg.CurrentProfile = p.Name
	}
	return nil
}

// RemoveProfile removes the named profile. If it was the current one,
// the selector moves to the first remaining profile, or is cleared.
// Callers persist with Save.
func (m *Manager) RemoveProfile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, p := range m.cfg.Profiles {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.Wrapf(geodeerrors.ErrProfileNotFound, "profile named %q does not exist", name)
	}

	m.cfg.Profiles = append(m.cfg.Profiles[:idx], m.cfg.Profiles[idx+1:]...)

	if m.cfg.CurrentProfile == name {
		m.cfg.CurrentProfile = ""
		if len(m.cfg.Profiles) > 0 {
			m.cfg.CurrentProfile = m.cfg.Profiles[0].Name
		}
	}
	return nil
}

// SwitchProfile makes the named profile current. Callers persist with
// Save.
func (m *Manager) SwitchProfile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findProfile(name) == nil {
		return errors.Wrapf(geodeerrors.ErrProfileNotFound, "profile named %q does not exist", name)
	}
	m.cfg.CurrentProfile = name
	return nil
}
