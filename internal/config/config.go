package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	PostgresDSN string
	ListenAddr  string
	Debug       bool
}

// Load reads configuration from the environment. Only the store DSN is
// required; everything else has a sensible default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("debug", false)

	for _, key := range []string{"postgres_dsn", "listen_addr", "debug"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		PostgresDSN: v.GetString("postgres_dsn"),
		ListenAddr:  v.GetString("listen_addr"),
		Debug:       v.GetBool("debug"),
	}
	if cfg.PostgresDSN == "" {
		return nil, errors.New("POSTGRES_DSN is not set")
	}
	return cfg, nil
}
