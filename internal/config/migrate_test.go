package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestLegacyConfig_Unmarshal(t *testing.T) {
	doc := `{
		"default-installation": 1,
		"working-installation": 0,
		"installations": [
			{"path": "/a", "executable": "GD.exe"},
			{"path": "/b", "executable": "gd"}
		],
		"default-developer": "bob"
	}`

	var legacy LegacyConfig
	require.NoError(t, json.Unmarshal([]byte(doc), &legacy))

	assert.Equal(t, 1, legacy.DefaultInstallation)
	require.NotNil(t, legacy.WorkingInstallation)
	assert.Equal(t, 0, *legacy.WorkingInstallation)
	require.Len(t, legacy.Installations, 2)
	assert.Equal(t, "bob", legacy.DefaultDeveloper)
}

func TestLegacyConfig_UnmarshalRejectsCurrentShape(t *testing.T) {
	doc := `{"current-profile": "Main", "profiles": [], "sdk-nightly": false}`

	var legacy LegacyConfig
	assert.Error(t, json.Unmarshal([]byte(doc), &legacy))
}

func TestMigrate(t *testing.T) {
	tests := []struct {
		name        string
		legacy      LegacyConfig
		wantNames   []string
		wantCurrent string
	}{
		{
			name: "exe suffix stripped, default index used",
			legacy: LegacyConfig{
				DefaultInstallation: 0,
				Installations: []LegacyInstallation{
					{Path: "/a", Executable: "GD.exe"},
					{Path: "/b", Executable: "GeometryDash"},
				},
			},
			wantNames:   []string{"GD", "GeometryDash"},
			wantCurrent: "GD",
		},
		{
			name: "working index wins over default",
			legacy: LegacyConfig{
				DefaultInstallation: 0,
				WorkingInstallation: intPtr(1),
				Installations: []LegacyInstallation{
					{Path: "/a", Executable: "GD.exe"},
					{Path: "/b", Executable: "gd2"},
				},
			},
			wantNames:   []string{"GD", "gd2"},
			wantCurrent: "gd2",
		},
		{
			name: "out of range index leaves current empty",
			legacy: LegacyConfig{
				DefaultInstallation: 5,
				Installations: []LegacyInstallation{
					{Path: "/a", Executable: "GD.exe"},
				},
			},
			wantNames:   []string{"GD"},
			wantCurrent: "",
		},
		{
			name:        "no installations",
			legacy:      LegacyConfig{DefaultInstallation: 0},
			wantNames:   []string{},
			wantCurrent: "",
		},
		{
			name: "suffix only stripped when trailing",
			legacy: LegacyConfig{
				DefaultInstallation: 0,
				Installations: []LegacyInstallation{
					{Path: "/a", Executable: "GD.exe.bak"},
				},
			},
			wantNames:   []string{"GD.exe.bak"},
			wantCurrent: "GD.exe.bak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.legacy.Migrate()

			names := make([]string, 0, len(cfg.Profiles))
			for _, p := range cfg.Profiles {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantCurrent, cfg.CurrentProfile)
			assert.False(t, cfg.SDKNightly, "migration never had the nightly concept")
			assert.Empty(t, cfg.Extra)
		})
	}
}

func TestMigrate_PathsCopiedVerbatim(t *testing.T) {
	legacy := LegacyConfig{
		DefaultInstallation: 0,
		Installations: []LegacyInstallation{
			{Path: `C:\Games\Geometry Dash`, Executable: "GeometryDash.exe"},
		},
		DefaultDeveloper: "carol",
	}

	cfg := legacy.Migrate()

	require.Len(t, cfg.Profiles, 1)
	assert.Equal(t, `C:\Games\Geometry Dash`, cfg.Profiles[0].GDPath)
	assert.Equal(t, "carol", cfg.DefaultDeveloper)
}
