package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hithesh05/chroma-shop-essence/cache"
	"github.com/hithesh05/chroma-shop-essence/config"
	"github.com/hithesh05/chroma-shop-essence/persistence"
	"github.com/hithesh05/chroma-shop-essence/routes"
	"github.com/hithesh05/chroma-shop-essence/services"
	"github.com/hithesh05/chroma-shop-essence/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	jwtService, err := services.NewJWTService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT service initialized")

	provider, redisClient := buildProvider(cfg)

	st := store.New(
		store.WithProvider(provider),
		store.WithSnapshotKey(cfg.SnapshotKey),
		store.WithAutoCloseDelay(cfg.CartAutoClose),
	)
	log.Printf("✅ Store ready (%d products, %d cart items restored)", len(st.Products()), len(st.Cart()))

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(router, routes.Deps{
		Store: st,
		JWT:   jwtService,
		Cache: cache.New(),
		Redis: redisClient,
	})

	fmt.Println("🚀 Server is running on http://localhost:" + cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}

// buildProvider picks the snapshot backend from config. The redis
// client is returned too so the rate limiter can share it.
func buildProvider(cfg *config.Config) (persistence.Provider, *redis.Client) {
	switch cfg.SnapshotBackend {
	case config.BackendRedis:
		client, err := config.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		return persistence.NewRedisProvider(client), client
	case config.BackendPostgres:
		db, err := config.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		provider, err := persistence.NewPostgresProvider(db)
		if err != nil {
			log.Fatalf("❌ Failed to migrate snapshots table: %v", err)
		}
		return provider, nil
	case config.BackendMemory:
		log.Println("⚠️ Using in-memory snapshots; state will not survive a restart")
		return persistence.NewMemoryProvider(), nil
	default:
		log.Printf("💾 Snapshots stored in %s/", cfg.SnapshotDir)
		return persistence.NewFileProvider(cfg.SnapshotDir), nil
	}
}
