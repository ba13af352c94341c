package config

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/validation"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/pflag"
)

// Config holds runtime settings.
type Config struct {
	DBPath                string `json:"db_path" env:"PASSVAULT_DB_PATH, overwrite" validate:"required"`
	LogLevel              string `json:"log_level" env:"PASSVAULT_LOG_LEVEL, overwrite" validate:"oneof=trace debug info warn error"`
	LogPretty             bool   `json:"log_pretty" env:"PASSVAULT_LOG_PRETTY, overwrite"`
	SealKey               string `json:"seal_key" env:"PASSVAULT_SEAL_KEY, overwrite" validate:"omitempty,hexadecimal"`
	DefaultPasswordLength uint   `json:"default_password_length" env:"PASSVAULT_PASSWORD_LENGTH, overwrite" validate:"min=1,max=4096"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "manager.db"
	c.LogLevel = "info"
	c.LogPretty = true
	c.SealKey = ""
	c.DefaultPasswordLength = 16
}

// Load builds a Config from defaults, the JSON file named by the config flag,
// the environment and finally the flags registered by RegisterFlags on fs.
// fs may be nil.
func Load(ctx context.Context, fs *pflag.FlagSet) (*Config, error) {
	return load(ctx, fs, envconfig.OsLookuper())
}

func load(ctx context.Context, fs *pflag.FlagSet, env envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := configPath(fs); path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: cfg, Lookuper: env}); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}

	if err := validation.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
