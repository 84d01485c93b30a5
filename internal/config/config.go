package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type SessionConfig struct {
	FilePath string
}

type ExportConfig struct {
	Currency string
}

type Config struct {
	Environment string
	Session     SessionConfig
	Export      ExportConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		Session: SessionConfig{
			FilePath: v.GetString("SESSION_FILE"),
		},
		Export: ExportConfig{
			Currency: v.GetString("EXPORT_CURRENCY"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = ".freightops/session.json"
	}
	if cfg.Export.Currency == "" {
		cfg.Export.Currency = "KZT"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Environment {
	case "development", "test", "production":
		return nil
	}
	return fmt.Errorf("unknown APP_ENV %q", cfg.Environment)
}
