package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	infraconfig "cryptostats-service/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port        string
	Storage     string
	DatabaseURL string
	// Provider
	Provider         string
	CoinGeckoAPIBase string
	CoinGeckoAPIKey  string
	RequestTimeout   time.Duration
	// Scheduler
	SchedulerEnabled bool
	FetchInterval    time.Duration
	FetchTimeout     time.Duration
	FetchOnStart     bool
	// Redis (STORAGE=redis)
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func boolDef(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	}
	return def
}

func msDef(key string, def time.Duration) time.Duration {
	ms := atoiDef(getEnv(key, ""), 0)
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:              getEnv("ENV", "local"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Port:             getEnv("PORT", infraconfig.DefaultHTTPPort),
		Storage:          getEnv("STORAGE", "pg"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		Provider:         getEnv("PROVIDER", "coingecko"),
		CoinGeckoAPIBase: getEnv("COINGECKO_API_BASE", infraconfig.DefaultCoinGeckoBase),
		CoinGeckoAPIKey:  getEnv("COINGECKO_API_KEY", ""),
		RequestTimeout:   msDef("REQUEST_TIMEOUT_MS", infraconfig.DefaultRequestTimeout),
		SchedulerEnabled: boolDef(getEnv("SCHEDULER_ENABLED", ""), true),
		FetchInterval:    msDef("FETCH_INTERVAL_MS", infraconfig.DefaultFetchInterval),
		FetchTimeout:     msDef("FETCH_TIMEOUT_MS", infraconfig.DefaultFetchTimeout),
		FetchOnStart:     boolDef(getEnv("FETCH_ON_START", ""), false),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisKeyPrefix:   getEnv("REDIS_KEY_PREFIX", infraconfig.DefaultRedisKeyPrefix),
	}
}
