package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.Business.Timezone)
	assert.Equal(t, 3, cfg.Business.SequenceRetryAttempts)
	assert.False(t, cfg.Redis.Enabled)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9090
database:
  driver: mysql
  database: desk
business:
  timezone: Asia/Baghdad
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Setenv("CASEDESK_BUSINESS_SEQUENCE_RETRY_ATTEMPTS", "5")

	cfg, err := Load("release", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "desk", cfg.Database.Database)
	assert.Equal(t, "Asia/Baghdad", cfg.Business.Timezone)
	assert.Equal(t, 5, cfg.Business.SequenceRetryAttempts)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("CASEDESK_DATABASE_DRIVER", "oracle")
	_, err := Load("", t.TempDir())
	assert.Error(t, err)
}
