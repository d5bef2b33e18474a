package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Store    StoreConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// StoreConfig selects where the itinerary is kept.
type StoreConfig struct {
	Backend     string        // "sqlite" or "file"
	Key         string        // slot key (sqlite) or file name stem (file)
	FilePath    string        `mapstructure:"file_path"`
	SaveTimeout time.Duration `mapstructure:"save_timeout"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Load reads configuration from file and env. Env var overrides use prefix PILGRIM_.
// A .env file in the working directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "pilgrim", "pilgrim.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.key", "itinerary")
	v.SetDefault("store.file_path", "")
	v.SetDefault("store.save_timeout", "5s")
	v.SetDefault("ui.date_format", "Mon, 02 Jan 2006")
	v.SetDefault("ui.timezone", "Local")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PILGRIM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pilgrim"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PILGRIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the app cannot start with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite:
		if strings.TrimSpace(c.Database.Path) == "" {
			return fmt.Errorf("config: database.path is required for the sqlite backend")
		}
	case BackendFile:
	default:
		return fmt.Errorf("config: unknown store.backend %q", c.Store.Backend)
	}
	if strings.TrimSpace(c.Store.Key) == "" {
		return fmt.Errorf("config: store.key is required")
	}
	return nil
}

// Location resolves UI.Timezone, falling back to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.UI.Timezone == "" || c.UI.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return time.Local, fmt.Errorf("load timezone %q: %w", c.UI.Timezone, err)
	}
	return loc, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("PILGRIM_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "pilgrim", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("store.backend", cfg.Store.Backend)
	v.Set("store.key", cfg.Store.Key)
	v.Set("store.file_path", cfg.Store.FilePath)
	v.Set("store.save_timeout", cfg.Store.SaveTimeout.String())
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
