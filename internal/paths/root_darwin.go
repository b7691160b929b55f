package paths

import "path/filepath"

// Root returns the base directory for persisted state. On macOS this is
// a fixed shared system path rather than a per-user directory, so that
// the managed installation is visible to every user on the machine.
func Root() string {
	return filepath.Join("/Users/Shared", DirName)
}
