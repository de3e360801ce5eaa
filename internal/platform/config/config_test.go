package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.19", cfg.TaxRate.String())
	assert.Equal(t, int64(10*1024*1024), cfg.UploadMaxBytes)
	assert.ElementsMatch(t, []string{"application/pdf", "image/jpeg", "image/jpg", "image/png"}, cfg.UploadAllowedMimeTypes)
	assert.Equal(t, StorageDriverLocal, cfg.Storage.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.2", cfg.TaxRate.String())
	assert.Equal(t, int64(1024), cfg.UploadMaxBytes)
	assert.Equal(t, StorageDriverS3, cfg.Storage.Driver)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidTaxRateFallsBack(t *testing.T) {
	t.Setenv("TAX_RATE", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.19", cfg.TaxRate.String())
}
