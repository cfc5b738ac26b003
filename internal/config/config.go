package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Prefs PrefsConfig
	UI    UIConfig
	Log   LogConfig
}

// PrefsConfig selects where UI preferences are persisted.
type PrefsConfig struct {
	Backend string
	Path    string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Role        string
	Title       string
	Breakpoint  int
	DrawerWidth int `mapstructure:"drawer_width"`
}

// LogConfig holds logger settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "eshop")
}

// Load reads configuration from file and env. Env var overrides use prefix ESHOP_.
// path overrides ESHOP_CONFIG when non-empty.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("prefs.backend", "sqlite")
	v.SetDefault("prefs.path", filepath.Join(dataDir(), "prefs.db"))
	v.SetDefault("ui.role", "user")
	v.SetDefault("ui.title", "Eshop Upgrad")
	v.SetDefault("ui.breakpoint", 80)
	v.SetDefault("ui.drawer_width", 26)
	v.SetDefault("log.path", filepath.Join(dataDir(), "eshop.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("ESHOP_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "eshop"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ESHOP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	c.Prefs.Backend = strings.ToLower(strings.TrimSpace(c.Prefs.Backend))
	if c.UI.Breakpoint <= 0 {
		c.UI.Breakpoint = 80
	}
	if c.UI.DrawerWidth <= 0 {
		c.UI.DrawerWidth = 26
	}
	if strings.TrimSpace(c.UI.Title) == "" {
		c.UI.Title = "Eshop Upgrad"
	}
	return c
}

// Save writes the provided config to path, creating the config directory if
// needed. An empty path resolves like Load does.
func Save(path string, cfg Config) error {
	if path == "" {
		path = os.Getenv("ESHOP_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "eshop", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("prefs.backend", cfg.Prefs.Backend)
	v.Set("prefs.path", cfg.Prefs.Path)
	v.Set("ui.role", cfg.UI.Role)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.breakpoint", cfg.UI.Breakpoint)
	v.Set("ui.drawer_width", cfg.UI.DrawerWidth)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
