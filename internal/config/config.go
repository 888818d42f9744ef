package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

const DefaultSequence = "ATGCAGAGATAGCAGCGCGACGATAGACAGACAGCATGCATGC" +
	"TACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTA"

type AppConfig struct {
	Env                    Environment
	LogLevel               string
	ServerPort             string
	RawBodyLog             bool
	HttpTimeoutSeconds     int
	ShutdownTimeoutSeconds int
}

type CounterConfig struct {
	DefaultSequence  string
	MaxSequenceBytes int64
	ChartWidth       int
}

type CacheConfig struct {
	Size int
}

type Config struct {
	App     AppConfig
	Counter CounterConfig
	Cache   CacheConfig
}

// Load reads envFile (or .env when empty) if present, then the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	return &Config{
		App: AppConfig{
			Env:                    env,
			LogLevel:               getLogLevel(env),
			ServerPort:             getEnv("APP_SERVER_PORT", "8080"),
			RawBodyLog:             getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds:     getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
			ShutdownTimeoutSeconds: getEnvInt("APP_SHUTDOWN_TIMEOUT_SECONDS", 10),
		},
		Counter: CounterConfig{
			DefaultSequence:  getEnv("COUNTER_DEFAULT_SEQUENCE", DefaultSequence),
			MaxSequenceBytes: int64(getEnvInt("COUNTER_MAX_SEQUENCE_BYTES", 1<<20)),
			ChartWidth:       getEnvInt("COUNTER_CHART_WIDTH", 50),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 128),
		},
	}, nil
}

func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.App.ServerPort); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("APP_SERVER_PORT must be a valid port, got %q", c.App.ServerPort)
	}
	if c.App.HttpTimeoutSeconds <= 0 || c.App.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("APP_HTTP_TIMEOUT_SECONDS and APP_SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	if c.Counter.MaxSequenceBytes <= 0 {
		return fmt.Errorf("COUNTER_MAX_SEQUENCE_BYTES must be positive")
	}
	if c.Counter.ChartWidth <= 0 {
		return fmt.Errorf("COUNTER_CHART_WIDTH must be positive")
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("CACHE_SIZE must not be negative")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}
