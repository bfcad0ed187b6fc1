package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration
type Config struct {
	// ListenAddr is the HTTP listen address for the websocket endpoint
	ListenAddr string

	// RedisAddr is the Redis server address
	RedisAddr string

	// RedisPassword is the Redis password, empty when unauthenticated
	RedisPassword string

	// TickInterval is the scheduler's tick period
	TickInterval time.Duration

	// ShutdownTimeout bounds graceful HTTP shutdown
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		TickInterval:    getEnvDuration("TICK_INTERVAL", time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration parses an environment variable as a duration, accepting
// either a Go duration string or a plain number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
