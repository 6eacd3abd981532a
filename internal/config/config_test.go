package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("INFLUXDB_URL", "http://localhost:8086")
	t.Setenv("INFLUXDB_TOKEN", "token")
	t.Setenv("INFLUXDB_ORG", "org")
	t.Setenv("INFLUXDB_BUCKET", "weather")
	t.Setenv("GROQ_API_KEY", "key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "sensor_data", cfg.Measurement)
	assert.Equal(t, int64(25<<20), cfg.MaxAudioBytes)
	assert.Equal(t, "whisper-large-v3", cfg.WhisperModel)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("GROQ_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_AUDIO_BYTES", "1048576")
	t.Setenv("ALLOWED_ORIGINS", "https://park.example , https://admin.park.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(1<<20), cfg.MaxAudioBytes)
	assert.Equal(t, []string{"https://park.example", "https://admin.park.example"}, cfg.AllowedOrigins)
}

func TestLoadConfigInvalidAudioCeilingFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_AUDIO_BYTES", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(25<<20), cfg.MaxAudioBytes)
}
