package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	RedisURL      string
	OpenAIKey     string
	MetricsPort   string
	PostalCode    string
	HistoryFile   string
	CacheFile     string
	ClassifyBatch int
	ClassifyDelay time.Duration
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
		PostalCode:    getEnv("POSTAL_CODE", "T3M1M9"), // Seton / Cranston
		HistoryFile:   getEnv("HISTORY_FILE", "seton_grocery_history.csv"),
		CacheFile:     getEnv("CACHE_FILE", "classification_cache.json"),
		ClassifyBatch: getEnvInt("CLASSIFY_BATCH", 100),
		ClassifyDelay: time.Duration(getEnvInt("CLASSIFY_DELAY_MS", 1500)) * time.Millisecond,
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
