package config

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	AppURL                    string
	DatabaseDSN               string
	RedisAddr                 string
	CompletionAPIKey          string
	CompletionAPIURL          string
	CompletionModel           string
	CompletionCacheTTLSeconds int
	RateLimit                 int
	ShutdownTimeoutSeconds    int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:                    fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:               getEnv("DATABASE_DSN", ""),
		RedisAddr:                 redisAddr(),
		CompletionAPIKey:          getEnv("COMPLETION_API_KEY", ""),
		CompletionAPIURL:          getEnv("COMPLETION_API_URL", "https://api.openai.com/v1/chat/completions"),
		CompletionModel:           getEnv("COMPLETION_MODEL", "gpt-4o-mini"),
		CompletionCacheTTLSeconds: getEnvAsInt("COMPLETION_CACHE_TTL_SECONDS", 3600),
		RateLimit:                 getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds:    getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

// redisAddr is optional: an empty REDIS_HOST disables the completion cache.
func redisAddr() string {
	host := getEnv("REDIS_HOST", "")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", host, getEnv("REDIS_PORT", "6379"))
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.CompletionAPIKey == "" {
		log.Fatal("COMPLETION_API_KEY must not be empty")
	}
	if cfg.CompletionCacheTTLSeconds <= 0 {
		log.Fatal("COMPLETION_CACHE_TTL_SECONDS must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
