package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIToken string        `envconfig:"POEDITOR_API_TOKEN" required:"true"`
	BaseURL  string        `envconfig:"POEDITOR_BASE_URL" default:""`
	Timeout  time.Duration `envconfig:"POEDITOR_TIMEOUT" default:"30s"`

	// UploadInterval enables client-side pacing of upload commands. Zero
	// leaves pacing to the caller; the service itself rejects more than one
	// upload every 30 seconds.
	UploadInterval time.Duration `envconfig:"POEDITOR_UPLOAD_INTERVAL" default:"0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIToken) == "" {
		return fmt.Errorf("POEDITOR_API_TOKEN is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("POEDITOR_TIMEOUT must be >= 0")
	}
	if c.UploadInterval < 0 {
		return fmt.Errorf("POEDITOR_UPLOAD_INTERVAL must be >= 0")
	}
	return nil
}
