package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Every field has a default, so
// the server starts with no environment at all.
type Config struct {
	Port       int
	ReportsDir string
	// ModelsDir, when set, points at pre-fitted pipeline artifacts.
	// Empty means train in-process at startup.
	ModelsDir  string
	SessionTTL time.Duration
	LogLevel   string
	LogFormat  string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override source. Keys are prefixed RISKSCREEN_, e.g.
// RISKSCREEN_PORT.
func Load() (*Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("riskscreen")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("reports_dir", "reports")
	v.SetDefault("models_dir", "")
	v.SetDefault("session_ttl", time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	return &Config{
		Port:       v.GetInt("port"),
		ReportsDir: v.GetString("reports_dir"),
		ModelsDir:  v.GetString("models_dir"),
		SessionTTL: v.GetDuration("session_ttl"),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
	}, nil
}
