package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SnapshotBackend != BackendFile {
		t.Errorf("SnapshotBackend = %q, want %q", cfg.SnapshotBackend, BackendFile)
	}
	if cfg.SnapshotKey != "ecommerce-store" {
		t.Errorf("SnapshotKey = %q", cfg.SnapshotKey)
	}
	if cfg.CartAutoClose != 3*time.Second {
		t.Errorf("CartAutoClose = %v, want 3s", cfg.CartAutoClose)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SNAPSHOT_BACKEND", BackendRedis)
	t.Setenv("CART_AUTOCLOSE_MS", "250")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.SnapshotBackend != BackendRedis {
		t.Errorf("SnapshotBackend = %q, want %q", cfg.SnapshotBackend, BackendRedis)
	}
	if cfg.CartAutoClose != 250*time.Millisecond {
		t.Errorf("CartAutoClose = %v, want 250ms", cfg.CartAutoClose)
	}
}

func TestInvalidAutoCloseFallsBack(t *testing.T) {
	t.Setenv("CART_AUTOCLOSE_MS", "not-a-number")

	cfg := Load()
	if cfg.CartAutoClose != 3*time.Second {
		t.Errorf("CartAutoClose = %v, want default 3s", cfg.CartAutoClose)
	}
}
