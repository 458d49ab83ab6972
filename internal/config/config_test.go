package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HTTP_ADDR", "GIN_MODE", "CORS_ALLOWED_ORIGINS", "STORAGE_DRIVER", "POSTGRES_DSN",
	"AUTO_MIGRATE", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REQUEST_TIMEOUT",
	"SHUTDOWN_TIMEOUT", "RATE_LIMIT_PER_MINUTE", "LOGIN_MAX_ATTEMPTS", "BCRYPT_COST", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/skillport?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8082", cfg.HTTPAddr)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.RateLimitEnabled())
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://skillport.dev ,")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REQUEST_TIMEOUT", "750ms")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://localhost:5173", "https://skillport.dev"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 3, cfg.LoginMaxAttempts)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing dsn", env: map[string]string{}},
		{name: "bad redis db", env: map[string]string{"STORAGE_DRIVER": "memory", "REDIS_DB": "one"}},
		{name: "bad timeout", env: map[string]string{"STORAGE_DRIVER": "memory", "REQUEST_TIMEOUT": "soon"}},
		{name: "bad migrate flag", env: map[string]string{"STORAGE_DRIVER": "memory", "AUTO_MIGRATE": "maybe"}},
		{name: "bad bcrypt cost", env: map[string]string{"STORAGE_DRIVER": "memory", "BCRYPT_COST": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPAddr:           ":8082",
			GinMode:            "release",
			RequestTimeout:     time.Second,
			ShutdownTimeout:    time.Second,
			StorageDriver:      StorageDriverMemory,
			RateLimitPerMinute: 10,
			LoginMaxAttempts:   5,
			BcryptCost:         10,
			LogLevel:           "info",
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "mysql" }},
		{name: "postgres without dsn", mutate: func(c *Config) { c.StorageDriver = StorageDriverPostgres }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimitPerMinute = 0 }},
		{name: "bcrypt too low", mutate: func(c *Config) { c.BcryptCost = 3 }},
		{name: "bad gin mode", mutate: func(c *Config) { c.GinMode = "prod" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
