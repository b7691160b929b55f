// Package paths resolves the platform-specific directory under which
// geode keeps its persisted state.
//
// The root directory is fixed per platform family:
//
//   - Windows and Linux: the per-user local data directory joined with
//     "Geode" (%LOCALAPPDATA%\Geode, ~/.local/share/Geode)
//   - macOS: the shared system path /Users/Shared/Geode
//
// Other platforms are unsupported; the set of supported platforms is
// fixed at build time, so building for anything else fails to compile
// rather than erroring at runtime.
package paths
