package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ESHOP_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Prefs.Backend)
	require.Equal(t, "user", cfg.UI.Role)
	require.Equal(t, "Eshop Upgrad", cfg.UI.Title)
	require.Equal(t, 80, cfg.UI.Breakpoint)
	require.Equal(t, 26, cfg.UI.DrawerWidth)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Prefs.Backend)
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[prefs]
backend = "Disk"
path = "/tmp/eshop-prefs"

[ui]
role = "admin"
breakpoint = 100
drawer_width = 30
`), 0o600))
	t.Setenv("ESHOP_UI_ROLE", "guest")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "disk", cfg.Prefs.Backend)
	require.Equal(t, "/tmp/eshop-prefs", cfg.Prefs.Path)
	require.Equal(t, "guest", cfg.UI.Role, "env should override file")
	require.Equal(t, 100, cfg.UI.Breakpoint)
	require.Equal(t, 30, cfg.UI.DrawerWidth)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Config{
		Prefs: PrefsConfig{Backend: "memory"},
		UI:    UIConfig{Role: "admin", Title: "Shop", Breakpoint: 90, DrawerWidth: 20},
		Log:   LogConfig{Level: "debug"},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "memory", got.Prefs.Backend)
	require.Equal(t, want.UI, got.UI)
	require.Equal(t, "debug", got.Log.Level)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nrole = "), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
