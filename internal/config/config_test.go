package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
shutdown_timeout = 5

[logs]
file = "dayview.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "salon-dayview"

[salon_api]
url = "http://salon-api:8000/api"
timeout = 7
page_size = 50

[dayview]
grid_start = "07:30"
grid_end = "21:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://salon-api:8000/api", cfg.SalonAPI.URL)
	assert.Equal(t, 50, cfg.SalonAPI.PageSize)

	start, err := cfg.DayView.GridStartMinute()
	require.NoError(t, err)
	assert.Equal(t, 7*60+30, start)

	end, err := cfg.DayView.GridEndMinute()
	require.NoError(t, err)
	assert.Equal(t, 21*60, end)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
[salon_api]
url = "http://localhost:8000/api"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 100, cfg.SalonAPI.PageSize)
	assert.Equal(t, "08:00", cfg.DayView.GridStart)
	assert.Equal(t, "20:00", cfg.DayView.GridEnd)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing salon_api url", `[server]
http_port = 8080`},
		{"invalid grid time", `[salon_api]
url = "http://localhost:8000"
[dayview]
grid_start = "8am"`},
		{"grid end before start", `[salon_api]
url = "http://localhost:8000"
[dayview]
grid_start = "20:00"
grid_end = "08:00"`},
		{"invalid port", `[server]
http_port = -1
[salon_api]
url = "http://localhost:8000"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
