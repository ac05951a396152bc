package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	infraconfig "cryptorates-service/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port        string
	Storage     string
	DatabaseURL string
	// Quote engine
	FeeRate            float64
	BaseCurrency       string
	PrecisionOverrides map[string]int
	// Provider
	Provider      string
	MarketAPIBase string
	MarketAPIKey  string
	// Worker
	WorkerType      string
	WorkerPoll      time.Duration
	WorkerBatchSize int
	RequestTimeout  time.Duration
	// Streaming
	StreamInterval time.Duration
	// Redis (snapshot cache + idempotency)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SnapshotTTL   time.Duration
	RedisTTL      time.Duration
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

func floatDef(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func durMS(key string, defMS int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, strconv.Itoa(defMS)), defMS)) * time.Millisecond
}

// parseOverrides reads a "SYM:places" CSV, e.g. "BTC:8,DOGE:3".
func parseOverrides(s string) map[string]int {
	if s == "" {
		return nil
	}
	out := map[string]int{}
	for _, part := range strings.Split(s, ",") {
		sym, places, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || sym == "" {
			continue
		}
		d, err := strconv.Atoi(places)
		if err != nil || d < 0 {
			continue
		}
		out[strings.ToUpper(sym)] = d
	}
	return out
}

// Load reads environment variables and applies defaults.
func Load() Config {
	feeRate := floatDef(getEnv("FEE_RATE", "0.01"), 0.01)
	if feeRate < 0 || feeRate >= 1 {
		feeRate = 0.01
	}
	return Config{
		Env:                getEnv("ENV", "local"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnv("PORT", infraconfig.DefaultHTTPPort),
		Storage:            getEnv("STORAGE", "pg"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		FeeRate:            feeRate,
		BaseCurrency:       getEnv("BASE_CURRENCY", "ZAR"),
		PrecisionOverrides: parseOverrides(getEnv("PRECISION_OVERRIDES", "")),
		Provider:           getEnv("PROVIDER", "fake"),
		MarketAPIBase:      getEnv("MARKET_API_BASE", ""),
		MarketAPIKey:       getEnv("MARKET_API_KEY", ""),
		WorkerType:         getEnv("WORKER_TYPE", "poll"),
		WorkerPoll:         durMS("WORKER_POLL_MS", 5000),
		WorkerBatchSize:    atoiDef(getEnv("WORKER_BATCH_LIMIT", "10"), 10),
		RequestTimeout:     durMS("REQUEST_TIMEOUT_MS", 3000),
		StreamInterval:     durMS("STREAM_INTERVAL_MS", 3000),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            atoiDef(getEnv("REDIS_DB", "0"), 0),
		SnapshotTTL:        durMS("SNAPSHOT_TTL_MS", 15000),
		RedisTTL:           durMS("IDEMPOTENCY_TTL_MS", 86400000),
	}
}
