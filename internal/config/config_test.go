package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Session.Driver)
	assert.Equal(t, 10, cfg.Retrieval.MaxTours)
	assert.Equal(t, 3, cfg.Retrieval.PreviewTours)
	assert.Equal(t, 6, cfg.Retrieval.HistoryTurns)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"invalid port", func(c *Config) { c.Server.Port = 0 }},
		{"missing mongo uri", func(c *Config) { c.Mongo.URI = "" }},
		{"unknown session driver", func(c *Config) { c.Session.Driver = "etcd" }},
		{"max tours out of range", func(c *Config) { c.Retrieval.MaxTours = 0 }},
		{"preview above max", func(c *Config) { c.Retrieval.PreviewTours = 99 }},
		{"negative history", func(c *Config) { c.Retrieval.HistoryTurns = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
retrieval:
  max_tours: 20
`), 0o644))

	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("ANSWER_MODEL", "gpt-4o")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Retrieval.MaxTours)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "gpt-4o", cfg.Completion.AnswerModel)
	// Untouched values keep their defaults.
	assert.Equal(t, "gpt-3.5-turbo", cfg.Completion.IntentModel)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
