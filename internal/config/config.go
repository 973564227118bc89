package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL        string
	RedisAddress      string
	RedisPassword     string
	QueuePollInterval time.Duration
	RequestTimeout    time.Duration
	Port              string
}

func Load() *Config {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000/api"
	}

	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	return &Config{
		APIBaseURL:        baseURL,
		RedisAddress:      redisAddr,
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		QueuePollInterval: readDurationSeconds("QUEUE_POLL_INTERVAL_SECONDS", 10),
		RequestTimeout:    readDurationSeconds("REQUEST_TIMEOUT_SECONDS", 15),
		Port:              port,
	}
}

func readDurationSeconds(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
