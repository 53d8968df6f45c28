package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/hithesh05/chroma-shop-essence/config"
	"github.com/hithesh05/chroma-shop-essence/models"
	"github.com/hithesh05/chroma-shop-essence/persistence"
	"github.com/hithesh05/chroma-shop-essence/store"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main writes a starter snapshot to the configured backend: a cart
// with two items, one wishlisted product and the logged-in demo user.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CHROMA SHOP - Snapshot Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.Load()
	provider := buildProvider(cfg)

	st := store.New()
	products := st.Products()

	user := models.User{ID: 1, Name: "John Doe", Email: "user@example.com", IsAdmin: false}
	snap := models.Snapshot{
		Cart: []models.CartItem{
			{Product: products[0], Quantity: 1},
			{Product: products[1], Quantity: 2},
		},
		Wishlist:   []models.Product{products[2]},
		User:       &user,
		IsLoggedIn: true,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Fatalf("Failed to encode snapshot: %v", err)
	}
	if err := provider.Save(context.Background(), cfg.SnapshotKey, data); err != nil {
		log.Fatalf("❌ Failed to write snapshot: %v", err)
	}

	fmt.Printf("✅ Seed snapshot written to %s backend under key %q\n", cfg.SnapshotBackend, cfg.SnapshotKey)
}

func buildProvider(cfg *config.Config) persistence.Provider {
	switch cfg.SnapshotBackend {
	case config.BackendRedis:
		client, err := config.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		return persistence.NewRedisProvider(client)
	case config.BackendPostgres:
		db, err := config.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		provider, err := persistence.NewPostgresProvider(db)
		if err != nil {
			log.Fatalf("❌ Failed to migrate snapshots table: %v", err)
		}
		return provider
	case config.BackendMemory:
		log.Fatal("❌ Seeding the memory backend is pointless; pick file, redis or postgres")
		return nil
	default:
		return persistence.NewFileProvider(cfg.SnapshotDir)
	}
}
