package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr            string        `mapstructure:"addr"`
	DBPath          string        `mapstructure:"db_path"`
	GeminiAPIKey    string        `mapstructure:"gemini_api_key"`
	GeminiModel     string        `mapstructure:"gemini_model"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadConfig reads the config file (optional) with EXPLIFY_* environment
// variables taking precedence.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXPLIFY")
	v.AutomaticEnv()

	// Every key needs a default so Unmarshal picks up env-only values.
	v.SetDefault("addr", ":8090")
	v.SetDefault("db_path", "explify.db")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
