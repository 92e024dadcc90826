// Package config loads CLI configuration from flags, environment
// variables and .env files.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration.
type Config struct {
	// Provider selects the engine: mysql, postgres or sqlite.
	Provider string
	// URL is the engine-native connection string, passed verbatim to the
	// driver. For sqlite this is a file path or ":memory:".
	URL string
	// Debug enables debug logging of executed statements.
	Debug bool
}

// Load reads configuration from the environment. Variables use the
// SQLHELPER_ prefix (SQLHELPER_PROVIDER, SQLHELPER_URL, SQLHELPER_DEBUG);
// DATABASE_URL is honored as a fallback for the URL. A .env file in the
// working directory is loaded first if present.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetEnvPrefix("SQLHELPER")
	v.AutomaticEnv()
	v.SetDefault("provider", "sqlite")

	url := v.GetString("url")
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}

	return &Config{
		Provider: v.GetString("provider"),
		URL:      url,
		Debug:    v.GetBool("debug"),
	}
}
