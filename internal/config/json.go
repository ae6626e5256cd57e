package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/plateful/plateful/internal/flagx"
	"github.com/plateful/plateful/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "90s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	DownloadDir    string         `json:"download_dir"`
	TokenPath      string         `json:"token_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag; when neither is present nothing is
// loaded. Fields absent from the file keep their current values.
func parseJSON(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.TokenPath != "" {
		cfg.TokenPath = jc.TokenPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}
