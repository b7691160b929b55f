package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Root returns the base directory for persisted state: the per-user
// local data directory joined with the application folder name
// (~/.local/share/Geode).
func Root() string {
	return filepath.Join(xdg.DataHome, DirName)
}
