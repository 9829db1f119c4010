package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testTokenKey = "test-secret"

// inTempDir keeps a developer's .env out of the test.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)
	t.Setenv("TOKEN_KEY", testTokenKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8443", cfg.HTTPAddr)
	assert.Equal(t, testTokenKey, cfg.TokenKey)
	assert.False(t, cfg.LogDebug)
	assert.False(t, cfg.TLS())
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, rate.Limit(1), cfg.RateLimit)
	assert.Equal(t, 3, cfg.RateBurst)
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.Contains(t, cfg.DatabaseURL, "dbname=postgres")
}

func TestLoad_CustomEnv(t *testing.T) {
	inTempDir(t)
	t.Setenv("TOKEN_KEY", testTokenKey)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TLS_CERT_FILE", "server.crt")
	t.Setenv("TLS_KEY_FILE", "server.key")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/pavement")
	t.Setenv("LOG_DEBUG", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("RATE_BURST", "10")
	t.Setenv("STATIC_DIR", "/srv/www")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.TLS())
	assert.Equal(t, "postgres://u:p@db/pavement", cfg.DatabaseURL)
	assert.True(t, cfg.LogDebug)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, rate.Limit(2.5), cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateBurst)
	assert.Equal(t, "/srv/www", cfg.StaticDir)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("TOKEN_KEY", "")
	os.Unsetenv("TOKEN_KEY")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOKEN_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TOKEN_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.TokenKey)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing token":    {},
		"bad shutdown":     {"TOKEN_KEY": testTokenKey, "SHUTDOWN_TIMEOUT": "soon"},
		"zero rate":        {"TOKEN_KEY": testTokenKey, "RATE_LIMIT": "0"},
		"bad burst":        {"TOKEN_KEY": testTokenKey, "RATE_BURST": "many"},
		"cert without key": {"TOKEN_KEY": testTokenKey, "TLS_CERT_FILE": "server.crt"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			inTempDir(t)
			t.Setenv("TOKEN_KEY", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
