package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupEnv() {
	vars := []string{
		"SERVER_PORT", "GIN_MODE", "ENVIRONMENT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"JWT_SECRET", "JWT_ACCESS_TOKEN_EXPIRY", "JWT_REFRESH_TOKEN_EXPIRY",
		"ALLOWED_ORIGINS", "REDIS_HOST", "REDIS_PORT", "REDIS_DB",
		"STATIC_ASSETS_DIR",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "bellapizza", cfg.Database.DBName)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiry)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "./static", cfg.Static.AssetsDir)
}

func TestLoadFromEnv(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	os.Setenv("SERVER_PORT", "9000")
	os.Setenv("JWT_SECRET", "super-secret")
	os.Setenv("JWT_ACCESS_TOKEN_EXPIRY", "30m")
	os.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")
	os.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadInvalidDuration(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	os.Setenv("JWT_ACCESS_TOKEN_EXPIRY", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	// Falls back to the default expiry rather than failing startup
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
}

func TestDatabaseDSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host:     "db.local",
		Port:     "5433",
		User:     "pizza",
		Password: "secret",
		DBName:   "bellapizza",
		SSLMode:  "disable",
	}

	dsn := dbCfg.DSN()
	assert.Equal(t, "host=db.local port=5433 user=pizza password=secret dbname=bellapizza sslmode=disable", dsn)
}
