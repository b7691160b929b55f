package paths

import (
	"os"
	"path/filepath"
)

// DirName is the application folder name joined onto the platform data
// directory.
const DirName = "Geode"

// ConfigFileName is the name of the persisted configuration document
// inside the root directory.
const ConfigFileName = "config.json"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// ConfigPath returns the path of the configuration document under root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// EnsureDir creates the directory and any necessary parents with the
// specified permissions. If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Exists reports whether the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
