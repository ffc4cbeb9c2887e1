package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	// Server
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Database
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	// LogFile enables rotated file logging when set; stdout otherwise.
	LogFile string `env:"LOG_FILE"`

	// Admin
	// AdminPassword seeds the admin record on first start. Admin routes
	// check the stored password, so changing this later has no effect
	// until the record is updated through the API.
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"default_password"`

	// Moderation
	// ModerationConfigPath points at an optional YAML file seeding the
	// word blacklist and mask before any admin has stored one.
	ModerationConfigPath string        `env:"MODERATION_CONFIG"`
	BlacklistCacheTTL    time.Duration `env:"BLACKLIST_CACHE_TTL" envDefault:"30s"`

	// CORS
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
