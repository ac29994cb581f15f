package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	DataDir         string
	DBPath          string
	MaxUploadSizeMB int
	Workers         int
	QueueSize       int
	RetentionHours  int
	CleanupSchedule string
	FFmpegPath      string
	FFprobePath     string
	KeepUploads     bool
	CORSOrigin      string
	PublicBaseURL   string
	RateLimit       int
	BehindProxy     bool
	Debug           bool
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; variables already set
// in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	port, err := getInt("PORT", 5001)
	if err != nil {
		return nil, err
	}
	maxUploadSizeMB, err := getInt("MAX_UPLOAD_SIZE_MB", 500)
	if err != nil {
		return nil, err
	}
	workers, err := getInt("WORKERS", 2)
	if err != nil {
		return nil, err
	}
	queueSize, err := getInt("QUEUE_SIZE", 16)
	if err != nil {
		return nil, err
	}
	retentionHours, err := getInt("RETENTION_HOURS", 0)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getInt("RATE_LIMIT_PER_MINUTE", 0)
	if err != nil {
		return nil, err
	}
	keepUploads, err := getBool("KEEP_UPLOADS", false)
	if err != nil {
		return nil, err
	}
	behindProxy, err := getBool("BEHIND_PROXY", false)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		return nil, fmt.Errorf("WORKERS must be at least 1, got %d", workers)
	}
	if queueSize < 0 {
		return nil, fmt.Errorf("QUEUE_SIZE must not be negative, got %d", queueSize)
	}
	if retentionHours < 0 {
		return nil, fmt.Errorf("RETENTION_HOURS must not be negative, got %d", retentionHours)
	}
	if rateLimit < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", rateLimit)
	}

	return &Config{
		Port:            port,
		DataDir:         getEnv("DATA_DIR", "uploads"),
		DBPath:          getEnv("DB_PATH", "data/swapaudio.db"),
		MaxUploadSizeMB: maxUploadSizeMB,
		Workers:         workers,
		QueueSize:       queueSize,
		RetentionHours:  retentionHours,
		CleanupSchedule: getEnv("CLEANUP_SCHEDULE", "@hourly"),
		FFmpegPath:      getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:     getEnv("FFPROBE_PATH", "ffprobe"),
		KeepUploads:     keepUploads,
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		PublicBaseURL:   strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/"),
		RateLimit:       rateLimit,
		BehindProxy:     behindProxy,
		Debug:           strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
