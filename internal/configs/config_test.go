package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("RABBITMQ_ENABLED", "false")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("FLUENTBIT_ENABLED", "false")
	t.Setenv("PROMO_DISCOUNT_PERCENT", "5")
	t.Setenv("PROMO_VALIDITY", "720h")
	t.Setenv("LEDGER_TX_TIMEOUT", "5s")
	t.Setenv("CONTACT_CACHE_TTL", "24h")
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Rest.AllowedOrigins)
	assert.Equal(t, 5, cfg.Promo.DiscountPercent)
	assert.Equal(t, 30*24*time.Hour, cfg.Promo.Validity)
	assert.Equal(t, 24*time.Hour, cfg.ContactCacheTTL)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	setBaseEnv(t)
	os.Unsetenv("STORAGE_DRIVER")
	t.Cleanup(func() { os.Unsetenv("STORAGE_DRIVER") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DRIVER= Memory \n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.StorageDriver)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"postgres without url", map[string]string{"STORAGE_DRIVER": "postgres", "DATABASE_URL": ""}, "DATABASE_URL"},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "mongo"}, "unknown STORAGE_DRIVER"},
		{"rabbit without url", map[string]string{"RABBITMQ_ENABLED": "true"}, "RABBITMQ_URL"},
		{"discount out of range", map[string]string{"PROMO_DISCOUNT_PERCENT": "0"}, "PROMO_DISCOUNT_PERCENT"},
		{"non-positive validity", map[string]string{"PROMO_VALIDITY": "0s"}, "PROMO_VALIDITY"},
		{"bad duration", map[string]string{"CONTACT_CACHE_TTL": "soon"}, "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(missingEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_FluentWithoutHostIsDisabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}
