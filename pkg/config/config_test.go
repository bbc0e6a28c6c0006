package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengiku/studio/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDRESS", "APP_ENV", "SITE_URL", "RESEND_API_KEY", "CONTACT_TO_EMAIL", "CONTACT_FROM_EMAIL", "CONTACT_SEND_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var cfg config.Config
	require.NoError(t, config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, ":8080", cfg.App.Address)
	assert.Equal(t, "https://sengiku.studio", cfg.App.SiteURL)
	assert.False(t, cfg.App.IsDev())
	assert.Equal(t, 30*time.Second, cfg.App.ShutdownTimeout)
	assert.Empty(t, cfg.Contact.APIKey)
	assert.Equal(t, "sengikustudio@gmail.com", cfg.Contact.ToEmail)
	assert.Equal(t, 10*time.Second, cfg.Contact.SendTimeout)
	assert.Equal(t, "https://api.resend.com", cfg.Resend.BaseURL)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("CONTACT_FROM_EMAIL", "Sengiku <hello@sengiku.studio>")
	t.Setenv("CONTACT_SEND_TIMEOUT", "3s")
	t.Setenv("CONTACT_SANITIZE_HTML", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://sengiku.studio, ,https://sengiku.studio,http://localhost:3000")
	t.Setenv("APP_ENV", "development")

	var cfg config.Config
	require.NoError(t, config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, "re_123", cfg.Contact.APIKey)
	assert.Equal(t, "re_123", cfg.Resend.APIKey)
	assert.Equal(t, "Sengiku <hello@sengiku.studio>", cfg.Contact.FromEmail)
	assert.Equal(t, 3*time.Second, cfg.Contact.SendTimeout)
	assert.True(t, cfg.Contact.SanitizeHTML)
	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, []string{"https://sengiku.studio", "http://localhost:3000"}, cfg.App.Origins())
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "CONTACT_TO_EMAIL"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=inbox@sengiku.studio\n"), 0o600))

	var cfg config.Config
	require.NoError(t, config.Load(&cfg, path))

	assert.Equal(t, "inbox@sengiku.studio", cfg.Contact.ToEmail)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CONTACT_SEND_TIMEOUT", "soon")

	var cfg config.Config
	err := config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Panics(t, func() { config.MustLoad(&cfg, filepath.Join(t.TempDir(), "missing.env")) })
}
