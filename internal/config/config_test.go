package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[schedcore]
url = "http://localhost:8081"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.SchedCore.Timeout)
	assert.Equal(t, 30, cfg.Sessions.TTLMinutes)
	assert.Equal(t, "*/5 * * * *", cfg.Sessions.SweepSchedule)
	assert.Equal(t, "profile.json", cfg.Profile.Path)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
allowed_origins = ["https://console.example.com"]

[schedcore]
url = "http://schedcore:8081"
timeout = 3

[sessions]
ttl_minutes = 5
sweep_schedule = "* * * * *"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"https://console.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3, cfg.SchedCore.Timeout)
	assert.Equal(t, 5, cfg.Sessions.TTLMinutes)
}

func TestLoad_RequiresSchedCoreURL(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}
