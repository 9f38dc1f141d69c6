package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("SEED_DATASET", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "nc_news", cfg.Database.Name)
	assert.Equal(t, "development", cfg.Seed.Dataset)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Minute, cfg.Database.MaxLifetime)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("SERVER_READ_TIMEOUT", "2s")
	t.Setenv("SEED_DATASET", "test")
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "test", cfg.Seed.Dataset)
	assert.Equal(t, "pretty", cfg.Log.Format)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	t.Setenv("SERVER_WRITE_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("SEED_DATASET", "production")

	_, err := Load()
	assert.EqualError(t, err, "SEED_DATASET must be one of: development, test")
}

func TestGetDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "news", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=news sslmode=disable", c.GetDSN())
}
