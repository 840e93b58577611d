package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Runtime configuration shared by the server and the offline tool.
// An empty SharedSecret disables the access gate entirely.
type Config struct {
	Port           string  `env:"PORT" envDefault:"8080"`
	SharedSecret   string  `env:"GPR_SHARED_SECRET"`
	ChainageStep   float64 `env:"CHAINAGE_STEP" envDefault:"0.25"`
	InputMode      string  `env:"INPUT_MODE" envDefault:"by_name"`
	ProfilePath    string  `env:"PROFILE_PATH"`
	MaxUploadBytes int64   `env:"MAX_UPLOAD_BYTES" envDefault:"33554432"`
}

// Load reads .env (when present) and parses the environment into a
// Config.
func Load() (Config, error) {
	// A missing .env file is fine; plain environment variables win.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: parse env: %w", err)
	}

	return cfg, nil
}
