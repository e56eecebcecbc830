package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "file", cfg.Store.Backend)
	require.Equal(t, "data/customers.json", cfg.Store.DataPath)
	require.Equal(t, "timestamp", cfg.Store.IDStrategy)
	require.False(t, cfg.Store.SerializeWrites)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, "", cfg.Redis.Addr())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("STORE_SERIALIZE_WRITES", "true")
	t.Setenv("ID_STRATEGY", "uuid")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("MONGODB_TIMEOUT", "3")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "8081", cfg.Server.Port)
	require.Equal(t, "redis", cfg.Store.Backend)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
	require.True(t, cfg.Store.SerializeWrites)
	require.Equal(t, "uuid", cfg.Store.IDStrategy)
	require.Equal(t, 2.5, cfg.RateLimit.RPS)
	require.Equal(t, 3*time.Second, cfg.MongoDB.Timeout)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATA_PATH=/tmp/plancare-dotenv.json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DATA_PATH") })

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	require.Equal(t, "/tmp/plancare-dotenv.json", cfg.Store.DataPath)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORE_BACKEND": "sqlite"}},
		{"redis without host", map[string]string{"STORE_BACKEND": "redis"}},
		{"mongo without uri", map[string]string{"STORE_BACKEND": "mongo"}},
		{"unknown id strategy", map[string]string{"ID_STRATEGY": "snowflake"}},
		{"bad rate limit", map[string]string{"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_RPS": "0"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
		})
	}
}
