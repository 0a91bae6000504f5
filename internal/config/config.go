// Package config loads ambient application configuration: where the
// state database lives and the tuning knobs that are not part of the
// persisted user settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds ambient, non-persisted application configuration.
// User-facing settings (webhook URL, mail address) live in the
// persisted blob instead, edited through the settings form.
type Config struct {
	// DBPath is the SQLite file holding the persisted state blob.
	DBPath string
	// DefaultBreakMinutes is the break length assumed for days without
	// a per-day override.
	DefaultBreakMinutes int
	// WebhookTimeoutSeconds bounds each outbound notification attempt.
	WebhookTimeoutSeconds int
}

// Load reads config.yaml from dir (default ~/.wta), falling back to
// defaults for missing keys. Environment variables prefixed WTA_
// override file values, e.g. WTA_DB_PATH.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".wta")
	}

	cfg := &Config{
		DBPath:                filepath.Join(dir, "wta.db"),
		DefaultBreakMinutes:   60,
		WebhookTimeoutSeconds: 10,
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("WTA")
	v.AutomaticEnv()

	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("default_break_minutes", cfg.DefaultBreakMinutes)
	v.SetDefault("webhook_timeout_seconds", cfg.WebhookTimeoutSeconds)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file found; defaults and env apply.
	}

	cfg.DBPath = v.GetString("db_path")
	cfg.DefaultBreakMinutes = v.GetInt("default_break_minutes")
	cfg.WebhookTimeoutSeconds = v.GetInt("webhook_timeout_seconds")

	if cfg.DefaultBreakMinutes < 0 {
		return nil, fmt.Errorf("default_break_minutes must not be negative: %d", cfg.DefaultBreakMinutes)
	}
	return cfg, nil
}
