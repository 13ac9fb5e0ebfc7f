package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "workers: 8\nlog_level: debug\ndatabase: out/cat.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "out/cat.db", cfg.Database)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: xml\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Database: "a.db", Workers: 1, LogLevel: "warn", LogFormat: "json"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"level", func(c *Config) { c.LogLevel = "verbose" }},
		{"format", func(c *Config) { c.LogFormat = "" }},
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"database", func(c *Config) { c.Database = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
