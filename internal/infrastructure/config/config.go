package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:5000/api"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`

	// StoreBackend selects where client state (token, user, theme) lives:
	// "file" for a single-machine console, "redis" for shared deployments.
	StoreBackend string `env:"STORE_BACKEND, default=file"`
	StateFile    string `env:"STATE_FILE,    default=.console/state.json"`

	ToastDwell         time.Duration `env:"TOAST_DWELL,          default=5s"`
	UnreadPollInterval time.Duration `env:"UNREAD_POLL_INTERVAL, default=60s"`

	// SchemeHintPath is the file the desktop hook writes "light"/"dark"
	// into. Empty means no live OS signal; the resolver sees light.
	SchemeHintPath string `env:"SCHEME_HINT_PATH"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
