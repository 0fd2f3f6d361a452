package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "DB_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"ENVIRONMENT", "LOG_FILE", "DB_MAX_CONNS", "DB_CONNECT_TIMEOUT", "LICENSE_STATE_CODE", "BROWSE_PAGE_SIZE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/realestate")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/realestate", cfg.DatabaseURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, int64(4), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, "CA", cfg.LicenseStateCode)
	assert.Equal(t, int64(20), cfg.BrowsePageSize)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "realestate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database_url: postgres://yaml-host/realestate
environment: production
db_max_conns: 8
db_connect_timeout: 2s
license_state_code: ny
browse_page_size: 500
`), 0o600))
	t.Setenv("DB_MAX_CONNS", "12")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://yaml-host/realestate", cfg.DatabaseURL)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, int64(12), cfg.DBMaxConns)
	assert.Equal(t, 2*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, "NY", cfg.LicenseStateCode)
	assert.Equal(t, int64(20), cfg.BrowsePageSize, "out of range page size falls back to default")
}

func TestLoad_DSNFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "estate")
	t.Setenv("DB_USER", "agent")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://agent:s3cret@db:5432/estate?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_MissingDatabase(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
