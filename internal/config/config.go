// Package config assembles the runtime settings for the plateful CLI from
// defaults, an optional JSON file, environment variables, and command-line
// flags, in that order of precedence.
package config

import (
	"time"

	"github.com/plateful/plateful/internal/api"
)

// Config holds runtime settings for the plateful CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend, without the /api/v1 prefix.
//   - DownloadDir: where downloaded recipes and images are written.
//     Empty means the current working directory.
//   - TokenPath: file holding the bearer token. Empty means the default
//     location under the user config directory.
//   - RequestTimeout: per-request deadline for backend calls.
type Config struct {
	ServerBaseURL  string        `env:"PLATEFUL_SERVER"`
	DownloadDir    string        `env:"PLATEFUL_DOWNLOAD_DIR"`
	TokenPath      string        `env:"PLATEFUL_TOKEN_PATH"`
	RequestTimeout time.Duration `env:"PLATEFUL_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = api.DefaultBaseURL
	c.DownloadDir = ""
	c.TokenPath = ""
	c.RequestTimeout = 2 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
