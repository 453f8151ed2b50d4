// Package config loads application configuration from an optional config
// file, a .env file, and REPRISE_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Env       string `mapstructure:"env"`        // current application environment (local, production)
	DBPath    string `mapstructure:"db_path"`    // SQLite database file path; empty means the platform default
	ProfileID string `mapstructure:"profile_id"` // active practice profile

	// RetentionTarget is the recall probability scheduling aims for at
	// the next review.
	RetentionTarget float64 `mapstructure:"retention_target"`

	// EstimatedMinutes is the planned duration written into scheduled
	// sessions.
	EstimatedMinutes int `mapstructure:"estimated_minutes"`
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A .env file is optional and only seeds the process environment.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("db_path", "")
	v.SetDefault("profile_id", "default")
	v.SetDefault("retention_target", 0.7)
	v.SetDefault("estimated_minutes", 15)

	v.SetEnvPrefix("REPRISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "REPRISE_ENV")
	_ = v.BindEnv("db_path", "REPRISE_DB")
	_ = v.BindEnv("profile_id", "REPRISE_PROFILE")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.RetentionTarget <= 0 || cfg.RetentionTarget >= 1 {
		return nil, fmt.Errorf("retention_target %v outside (0, 1)", cfg.RetentionTarget)
	}
	if cfg.EstimatedMinutes <= 0 {
		return nil, fmt.Errorf("estimated_minutes %d must be positive", cfg.EstimatedMinutes)
	}

	return &cfg, nil
}
