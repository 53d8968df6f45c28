package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Snapshot backends selectable via SNAPSHOT_BACKEND.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port            string
	JWTSecret       string
	SnapshotBackend string
	SnapshotDir     string
	SnapshotKey     string
	RedisURL        string
	DatabaseURL     string
	CartAutoClose   time.Duration
	AllowedOrigins  []string
}

// Load reads configuration from the environment, pulling in a local
// .env first when one exists (ignored in deployed environments).
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", BackendFile),
		SnapshotDir:     getEnv("SNAPSHOT_DIR", "data"),
		SnapshotKey:     getEnv("SNAPSHOT_KEY", "ecommerce-store"),
		RedisURL:        getEnv("REDIS_URL", ""),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		CartAutoClose:   getDurationMS("CART_AUTOCLOSE_MS", 3000),
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationMS(key string, fallbackMS int) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return time.Duration(fallbackMS) * time.Millisecond
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("⚠️ Invalid %s=%q, using default %dms", key, raw, fallbackMS)
		return time.Duration(fallbackMS) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
