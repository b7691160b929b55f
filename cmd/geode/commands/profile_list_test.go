package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestProfileListCommand_Metadata(t *testing.T) {
	if profileListCmd.Use != "list" {
		t.Errorf("Use = %q, want %q", profileListCmd.Use, "list")
	}
	if profileListCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if profileListCmd.Flags().Lookup("output") == nil {
		t.Error("--output flag should be defined")
	}
}

func TestProfileList_Text(t *testing.T) {
	root := t.TempDir()
	seedConfig(t, root, twoProfileDoc)
	m := loadTestManager(t, root)

	var buf bytes.Buffer
	if err := runProfileListWithWriter(&buf, m); err != nil {
		t.Fatalf("runProfileListWithWriter() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Main") || !strings.Contains(output, "Nightly") {
		t.Errorf("output = %q, want both profile names", output)
	}
	if !strings.Contains(output, "/games/GDNightly") {
		t.Error("output should contain installation paths")
	}

	// Only the current profile gets the marker.
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		starred := strings.HasPrefix(line, "*")
		if strings.Contains(line, "Main") && !strings.Contains(line, "Nightly") && !starred {
			t.Errorf("current profile line should be marked: %q", line)
		}
		if strings.Contains(line, "Nightly") && starred {
			t.Errorf("non-current profile line should not be marked: %q", line)
		}
	}
}

func TestProfileList_TextEmpty(t *testing.T) {
	root := t.TempDir()
	m := loadTestManager(t, root)

	var buf bytes.Buffer
	if err := runProfileListWithWriter(&buf, m); err != nil {
		t.Fatalf("runProfileListWithWriter() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No profiles") {
		t.Errorf("output = %q, want the empty-state message", buf.String())
	}
}

func TestProfileList_JSON(t *testing.T) {
	root := t.TempDir()
	seedConfig(t, root, twoProfileDoc)
	m := loadTestManager(t, root)

	profileListOutput = "json"
	t.Cleanup(func() { profileListOutput = "text" })

	var buf bytes.Buffer
	if err := runProfileListWithWriter(&buf, m); err != nil {
		t.Fatalf("runProfileListWithWriter() error = %v", err)
	}

	var rows []profileInfo
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Main" || !rows[0].Current {
		t.Errorf("rows[0] = %+v, want current profile Main", rows[0])
	}
	if rows[1].Name != "Nightly" || rows[1].Current {
		t.Errorf("rows[1] = %+v, want non-current profile Nightly", rows[1])
	}
}

func TestProfileList_YAML(t *testing.T) {
	root := t.TempDir()
	seedConfig(t, root, twoProfileDoc)
	m := loadTestManager(t, root)

	profileListOutput = "yaml"
	t.Cleanup(func() { profileListOutput = "text" })

	var buf bytes.Buffer
	if err := runProfileListWithWriter(&buf, m); err != nil {
		t.Fatalf("runProfileListWithWriter() error = %v", err)
	}

	var rows []profileInfo
	if err := yaml.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("failed to unmarshal YAML: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Path != "/games/GD" {
		t.Errorf("rows[0].Path = %q, want %q", rows[0].Path, "/games/GD")
	}
}

func TestProfileList_UnknownFormat(t *testing.T) {
	root := t.TempDir()
	seedConfig(t, root, twoProfileDoc)
	m := loadTestManager(t, root)

	profileListOutput = "xml"
	t.Cleanup(func() { profileListOutput = "text" })

	var buf bytes.Buffer
	err := runProfileListWithWriter(&buf, m)
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error = %q, want it to name the format", err.Error())
	}
}
