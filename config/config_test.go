package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points .env and secrets lookups at an empty temp dir so the
// developer's machine does not leak into the test.
func isolate(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, ".env"))
	t.Setenv("SECRETS_DIR", dir)
	for _, key := range []string{
		"CI", "ENV", "SERVER_PORT", "SERVER_HOST", "DB_DRIVER", "DB_PATH", "DB_USER", "DB_NAME",
		"DB_PASSWORD", "JWT_SECRET", "REDIS_URL", "EXPOSE_INTERNAL_ERRORS", "DEBUG_ROUTES",
		"SEED_ON_START", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "database.db", cfg.DBPath)
	assert.Empty(t, cfg.JWTSecret)
	assert.True(t, cfg.ExposeInternalErrors)
	assert.False(t, cfg.DebugRoutes)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Zero(t, cfg.RateLimitPerMinute)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_NAME", "ecocart")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DEBUG_ROUTES", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://frontend:5173")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "pw", cfg.DBPassword)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.True(t, cfg.DebugRoutes)
	assert.Equal(t, []string{"http://localhost:5173", "http://frontend:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigReadsSecretsAndDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-file\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\n"), 0o600))
	// godotenv does not override variables that are already set, even to "".
	require.NoError(t, os.Unsetenv("SERVER_PORT"))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestLoadConfigProductionRequiresSecret(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigProductionHidesInternalErrors(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.ExposeInternalErrors)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("DEBUG_ROUTES", "maybe")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEBUG_ROUTES")
}

func TestValidateConfigPostgresRequiresConnectionInfo(t *testing.T) {
	cfg := &Config{ServerPort: "5000", DBDriver: "postgres", DBPort: "5432", LogFormat: "text"}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestLoadConfigRateLimitIsOptIn(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg.RateLimitPerMinute)

	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		ci, env    string
		want       Environment
		production bool
	}{
		{env: "", want: Development},
		{env: "production", want: Production, production: true},
		{env: "test", want: Test},
		{env: "staging", want: Development},
		{ci: "true", env: "production", want: CI},
	}
	for _, tt := range tests {
		t.Run(string(tt.want)+"/"+tt.env, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			t.Setenv("ENV", tt.env)

			assert.Equal(t, tt.want, GetEnvironment())
			assert.Equal(t, tt.production, IsProduction())
		})
	}
}
