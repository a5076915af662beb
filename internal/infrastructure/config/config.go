package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=medconnect-dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Picture PictureConfig
}

type SessionConfig struct {
	// TokenTTL bounds how long a minted session token stays valid. The
	// session itself still dies with the process or on logout.
	TokenTTL time.Duration `env:"SESSION_TOKEN_TTL, default=24h"`
	// SubmitDelay is the simulated backend latency applied to every
	// login/signup submission before the session mutation commits.
	SubmitDelay time.Duration `env:"SUBMIT_DELAY, default=1s"`
}

type PictureConfig struct {
	Workers int `env:"PICTURE_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
