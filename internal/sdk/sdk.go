// Package sdk locates an externally-cloned Geode SDK directory via
// environment configuration and validates it with a marker file.
package sdk

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
)

// EnvVar names the environment variable pointing at the SDK clone.
const EnvVar = "GEODE_SDK"

// MarkerFile must exist inside a valid SDK clone.
const MarkerFile = "VERSION"

// Locate resolves the SDK path from the environment. It never
// terminates the process; call sites that cannot proceed without the
// SDK decide what to do with the error.
func Locate() (string, error) {
	value, ok := os.LookupEnv(EnvVar)
	if !ok || value == "" {
		return "", errors.Wrap(geodeerrors.ErrSDKNotSet,
			"unable to find Geode SDK (GEODE_SDK isn't set); install it using "+
				"`geode sdk install` or use `geode sdk set-path` to point it at an "+
				"existing clone, and restart your terminal to apply changes")
	}

	info, err := os.Stat(value)
	if err != nil || !info.IsDir() {
		return "", errors.Wrap(geodeerrors.ErrSDKInvalid,
			"GEODE_SDK doesn't point to a directory; fix it manually or reinstall "+
				"using `geode sdk install --reinstall`")
	}

	if _, err := os.Stat(filepath.Join(value, MarkerFile)); err != nil {
		return "", errors.Wrap(geodeerrors.ErrSDKInvalid,
			"GEODE_SDK/VERSION not found; reinstall the Geode SDK using "+
				"`geode sdk install --reinstall`")
	}

	return value, nil
}
