package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "secret_key": "passphrase", "page_limit": 25 },
		"adapter": { "http_address": "https://quests.example.com/api", "request_timeout": "30s" },
		"storage": {
			"db": { "dsn": "/var/lib/quests.db" },
			"secrets": { "path": "/var/lib/session.sealed" }
		},
		"workers": { "refresh_interval": "2m", "notification_interval": "24h" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "passphrase", cfg.App.SecretKey)
	assert.Equal(t, 25, cfg.App.PageLimit)
	assert.Equal(t, "https://quests.example.com/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/quests.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/session.sealed", cfg.Storage.Secrets.Path)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 24*time.Hour, cfg.Workers.NotificationInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "fast"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"refresh_interval": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.RefreshInterval)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
