package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load builds the configuration from defaults, an optional config file and
// environment variables, in ascending precedence. Environment variables use
// the CARDDOWN_ prefix (CARDDOWN_LOG_LEVEL, CARDDOWN_DATA_DIR, ...); a .env
// file in the working directory seeds them when present. cfgFile overrides
// the default config file location ($XDG_CONFIG_HOME/carddown/config.yaml).
// Malformed configuration is a fatal error, unlike corrupt data files.
func Load(cfgFile string) (*Config, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "carddown"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// A missing default config file is fine; an explicitly requested file
	// that cannot be read is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CARDDOWN")
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("algorithm", "sm2")
	v.SetDefault("leech_threshold", 15)
	v.SetDefault("leech_policy", "skip")
	v.SetDefault("max_cards", 30)
	v.SetDefault("max_duration_minutes", 20)
	v.SetDefault("cram_hours", 12)
	v.SetDefault("extensions", []string{"md", "markdown", "txt", "org"})
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "carddown")
	}
	return ".carddown"
}
