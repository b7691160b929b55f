package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
	"github.com/geode-sdk/geode-cli/internal/paths"
)

func TestConfigSetupCommand_Metadata(t *testing.T) {
	if configSetupCmd.Use != "setup <path>" {
		t.Errorf("Use = %q, want %q", configSetupCmd.Use, "setup <path>")
	}
	if configSetupCmd.Flags().Lookup("name") == nil {
		t.Error("--name flag should be defined")
	}
}

func TestConfigSetup_DefaultsNameToDirectory(t *testing.T) {
	root := t.TempDir()
	gdPath := filepath.Join(t.TempDir(), "GeometryDash")
	if err := os.MkdirAll(gdPath, 0o755); err != nil {
		t.Fatal(err)
	}
	cmd, buf := newTestCommand(t, root)

	if err := runConfigSetup(cmd, []string{gdPath}); err != nil {
		t.Fatalf("runConfigSetup() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Set up profile 'GeometryDash'") {
		t.Errorf("output = %q, want the directory name as profile name", buf.String())
	}

	m := loadTestManager(t, root)
	if m.CurrentProfileName() != "GeometryDash" {
		t.Errorf("current profile = %q, want %q", m.CurrentProfileName(), "GeometryDash")
	}
}

func TestConfigSetup_ExplicitName(t *testing.T) {
	root := t.TempDir()
	gdPath := t.TempDir()
	cmd, _ := newTestCommand(t, root)

	setupProfileName = "Custom"
	t.Cleanup(func() { setupProfileName = "" })

	if err := runConfigSetup(cmd, []string{gdPath}); err != nil {
		t.Fatalf("runConfigSetup() error = %v", err)
	}

	m := loadTestManager(t, root)
	if m.Profile("Custom") == nil {
		t.Error("profile should be created with the explicit name")
	}
}

func TestConfigSetup_MissingDirectory(t *testing.T) {
	root := t.TempDir()
	cmd, _ := newTestCommand(t, root)

	err := runConfigSetup(cmd, []string{filepath.Join(root, "nope")})
	if err == nil {
		t.Fatal("expected an error for a nonexistent path")
	}
	assertExitCode(t, err, geodeerrors.ExitUser)
}

func TestConfigSetup_NameTaken(t *testing.T) {
	root := t.TempDir()
	seedConfig(t, root, twoProfileDoc)
	cmd, _ := newTestCommand(t, root)

	setupProfileName = "Main"
	t.Cleanup(func() { setupProfileName = "" })

	err := runConfigSetup(cmd, []string{t.TempDir()})
	if err == nil {
		t.Fatal("expected an error for a taken name")
	}
	assertExitCode(t, err, geodeerrors.ExitUser)
}

func TestConfigPath(t *testing.T) {
	root := t.TempDir()
	cmd, buf := newTestCommand(t, root)

	if err := runConfigPath(cmd, nil); err != nil {
		t.Fatalf("runConfigPath() error = %v", err)
	}

	want := filepath.Join(root, paths.ConfigFileName)
	if strings.TrimSpace(buf.String()) != want {
		t.Errorf("output = %q, want %q", strings.TrimSpace(buf.String()), want)
	}
}
