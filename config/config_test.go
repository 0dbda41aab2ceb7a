package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9000"
postgres:
  host: db.internal
  dbname: meta
  maxConns: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "meta", cfg.Postgres.DBName)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.EqualValues(t, 4, cfg.Postgres.MaxConns)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("postgres:\n  host: a\n"), 0o600))
	t.Setenv("METAAPI_POSTGRES_HOST", "b")
	t.Setenv("METAAPI_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "b", cfg.Postgres.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	p := Default().Postgres
	p.Password = "pw"
	assert.Equal(t,
		"host=localhost user=postgres password=pw dbname=readmedatabase port=5432 sslmode=disable TimeZone=UTC",
		p.DSN())
}
