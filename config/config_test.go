package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"PORT", "DATA_DIR", "DB_PATH", "MAX_UPLOAD_SIZE_MB", "WORKERS", "QUEUE_SIZE",
		"RETENTION_HOURS", "CLEANUP_SCHEDULE", "FFMPEG_PATH", "FFPROBE_PATH",
		"KEEP_UPLOADS", "CORS_ORIGIN", "PUBLIC_BASE_URL", "RATE_LIMIT_PER_MINUTE",
		"BEHIND_PROXY", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "uploads", cfg.DataDir)
	assert.Equal(t, "data/swapaudio.db", cfg.DBPath)
	assert.Equal(t, 500, cfg.MaxUploadSizeMB)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 16, cfg.QueueSize)
	assert.Equal(t, 0, cfg.RetentionHours)
	assert.Equal(t, "@hourly", cfg.CleanupSchedule)
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "ffprobe", cfg.FFprobePath)
	assert.False(t, cfg.KeepUploads)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Empty(t, cfg.PublicBaseURL)
	assert.Zero(t, cfg.RateLimit)
	assert.False(t, cfg.BehindProxy)
	assert.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_DIR", "/srv/media")
	t.Setenv("WORKERS", "4")
	t.Setenv("KEEP_UPLOADS", "true")
	t.Setenv("PUBLIC_BASE_URL", "https://media.example.com/")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "6")
	t.Setenv("BEHIND_PROXY", "1")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/srv/media", cfg.DataDir)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.KeepUploads)
	assert.Equal(t, "https://media.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 6, cfg.RateLimit)
	assert.True(t, cfg.BehindProxy)
	assert.True(t, cfg.Debug)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "non numeric port", key: "PORT", value: "abc", errMsg: "invalid PORT"},
		{name: "zero workers", key: "WORKERS", value: "0", errMsg: "WORKERS must be at least 1"},
		{name: "negative queue", key: "QUEUE_SIZE", value: "-1", errMsg: "QUEUE_SIZE must not be negative"},
		{name: "negative retention", key: "RETENTION_HOURS", value: "-5", errMsg: "RETENTION_HOURS must not be negative"},
		{name: "bad bool", key: "KEEP_UPLOADS", value: "maybe", errMsg: "invalid KEEP_UPLOADS"},
		{name: "negative rate limit", key: "RATE_LIMIT_PER_MINUTE", value: "-1", errMsg: "RATE_LIMIT_PER_MINUTE must not be negative"},
		{name: "bad proxy flag", key: "BEHIND_PROXY", value: "yes please", errMsg: "invalid BEHIND_PROXY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
