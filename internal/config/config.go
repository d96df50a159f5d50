package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

// Config is the client configuration, read from the environment.
type Config struct {
	APIURL   string `env:"VELOUR_API_URL,  default=https://api.velour.app"`
	DataDir  string `env:"VELOUR_DATA_DIR"`
	LogLevel string `env:"VELOUR_LOG_LEVEL, default=info"`
	LogFile  string `env:"VELOUR_LOG_FILE"`
}

// Load reads configuration from environment variables and fills in the
// derived defaults (data dir under the home directory, log file inside it).
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".velour")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "velour.log")
	}
	return &cfg, nil
}
