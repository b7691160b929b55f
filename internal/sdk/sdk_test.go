package sdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
)

func TestLocate_EnvUnset(t *testing.T) {
	t.Setenv(EnvVar, "")
	os.Unsetenv(EnvVar)

	_, err := Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, geodeerrors.ErrSDKNotSet)
	assert.Contains(t, err.Error(), "geode sdk install")
}

func TestLocate_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	t.Setenv(EnvVar, file)

	_, err := Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, geodeerrors.ErrSDKInvalid)
	assert.Contains(t, err.Error(), "--reinstall")
}

func TestLocate_MissingPath(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing"))

	_, err := Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, geodeerrors.ErrSDKInvalid)
}

func TestLocate_MissingMarker(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, dir)

	_, err := Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, geodeerrors.ErrSDKInvalid)
	assert.Contains(t, err.Error(), MarkerFile)
}

func TestLocate_Valid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MarkerFile), []byte("4.0.0\n"), 0o644))
	t.Setenv(EnvVar, dir)

	path, err := Locate()
	require.NoError(t, err)
	assert.Equal(t, dir, path)
}
