package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lexforge.toml"), []byte(body), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("missing", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.ServicePort)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, jwt.SigningMethodHS256, cfg.JWT.SigningMethod)
	assert.Equal(t, 30*time.Second, cfg.PDF.Timeout)
	assert.Equal(t, "Tellers", cfg.Cessionnaire.Name)
	assert.Equal(t, "932 553 266 R.C.S. Lyon", cfg.Cessionnaire.Registration)
	assert.Empty(t, cfg.Redis.Host)
	assert.Empty(t, cfg.MinIO.Endpoint)
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
ServicePort = 8080
LogFormat = "json"

[Storage]
Driver = "sqlite"
DSN = "file::memory:"

[JWT]
Token = "secret"
ExpiresIn = "2h"

[Cessionnaire]
name = "Studio Nord"
legal_form = "SARL"

[CORS]
AllowOrigins = ["https://app.example.org"]
`)
	cfg, err := Load("lexforge", dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "secret", cfg.JWT.Token)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "Studio Nord", cfg.Cessionnaire.Name)
	assert.Equal(t, "SARL", cfg.Cessionnaire.LegalForm)
	assert.Equal(t, []string{"https://app.example.org"}, cfg.CORS.AllowOrigins)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("LEXFORGE_SERVICEPORT", "9000")
	t.Setenv("LEXFORGE_STORAGE_DATADIR", "/var/lib/lexforge")
	t.Setenv("LEXFORGE_MINIO_ENDPOINT", "minio:9000")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load("missing", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.ServicePort)
	assert.Equal(t, "/var/lib/lexforge", cfg.Storage.DataDir)
	assert.Equal(t, "minio:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, "redis", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "unknown driver", body: "[Storage]\nDriver = \"mongo\"\n"},
		{name: "sql without dsn", body: "[Storage]\nDriver = \"postgres\"\n"},
		{name: "bad port", body: "ServicePort = 70000\n"},
		{name: "bad redis port", env: map[string]string{"REDIS_PORT": "abc"}},
		{name: "broken toml", body: "ServicePort = = 1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("lexforge", writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
