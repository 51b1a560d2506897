package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "file", cfg.RosterSource)
	assert.Equal(t, "participants.csv", cfg.RosterPath)
	assert.Equal(t, "Helvetica", cfg.FontFamily)
	assert.Equal(t, float64(32), cfg.FontSize)
	assert.Equal(t, 10*time.Minute, cfg.DownloadExpiresDuration)
	assert.False(t, cfg.RequireEvent())
}

func TestLoad_EnvOverrides(t *testing.T) {
	_ = os.Setenv("APP_HTTP_PORT", "9090")
	_ = os.Setenv("APP_ROSTER_PATH", "people.xlsx")
	_ = os.Setenv("APP_DB_DRIVER", "postgres")
	_ = os.Setenv("APP_EVENTS", "Drive 2024, Drive 2025")
	_ = os.Setenv("APP_RENDER_TIMEOUT", "3s")
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_HTTP_PORT")
		_ = os.Unsetenv("APP_ROSTER_PATH")
		_ = os.Unsetenv("APP_DB_DRIVER")
		_ = os.Unsetenv("APP_EVENTS")
		_ = os.Unsetenv("APP_RENDER_TIMEOUT")
	})

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "people.xlsx", cfg.RosterPath)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []string{"Drive 2024", "Drive 2025"}, cfg.Events)
	assert.True(t, cfg.RequireEvent())
	assert.Equal(t, 3*time.Second, cfg.RenderTimeoutDuration)
}

func TestLoad_YAMLEventsKeepCommas(t *testing.T) {
	dir := t.TempDir()
	yaml := "events:\n  - \"Drive, Mumbai 2024\"\n  - \" Drive 2025 \"\n  - \"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg := Load()

	assert.Equal(t, []string{"Drive, Mumbai 2024", "Drive 2025"}, cfg.Events)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr bool
	}{
		{"prod-default-secret", "prod", defaultDownloadSecret, true},
		{"prod-empty-secret", "prod", "", true},
		{"prod-custom-secret", "prod", "s3cr3t-from-vault", false},
		{"dev-default-secret", "dev", defaultDownloadSecret, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(&Config{Env: tc.env, DownloadSecret: tc.secret})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
