// Package config owns the persisted configuration document of the
// geode CLI: the profile collection, the active profile selector, and
// global passthrough flags.
//
// The document lives at <platform-root>/config.json. Loading migrates
// an older index-based schema transparently (see migrate.go) and
// repairs a dangling current-profile reference. Unrecognized fields at
// both the top level and inside each profile are preserved verbatim
// across a load/save cycle so newer versions can share the same file.
package config
