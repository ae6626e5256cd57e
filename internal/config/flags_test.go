package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", "http://flagged:9999", "-d", "/tmp/dl"}

		cfg := &Config{ServerBaseURL: "http://defaults:1234"}
		parseFlags(cfg)

		assert.Equal(t, "http://flagged:9999", cfg.ServerBaseURL)
		assert.Equal(t, "/tmp/dl", cfg.DownloadDir)
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-zzz", "oops", "-a", "http://flagged:9999"}

		cfg := &Config{}
		parseFlags(cfg)

		assert.Equal(t, "http://flagged:9999", cfg.ServerBaseURL)
	})

	t.Run("no flags means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerBaseURL: "http://defaults:1234", DownloadDir: "/keep"}
		parseFlags(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerBaseURL)
		assert.Equal(t, "/keep", cfg.DownloadDir)
	})
}
