package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.HTTP.Port)
	}
	if cfg.Mongo.Database != "todolist" {
		t.Errorf("database = %q, want todolist", cfg.Mongo.Database)
	}
	if cfg.HTTP.ReadTimeout.Duration() != 10*time.Second {
		t.Errorf("read timeout = %v, want 10s", cfg.HTTP.ReadTimeout.Duration())
	}
	if cfg.Redis.DefaultTTL.Duration() != 60*time.Second {
		t.Errorf("redis ttl = %v, want 60s", cfg.Redis.DefaultTTL.Duration())
	}
}

func TestLoadRequiresMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "") // registers cleanup that restores the old value
	os.Unsetenv("MONGO_URL")

	if _, err := Load(); err == nil {
		t.Error("Load should fail without MONGO_URL")
	}
}

func TestLoadRedisURLOverridesAddr(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("REDIS_ADDR", "ignored:1")
	t.Setenv("REDIS_URL", "redis://default:pw@cache.internal:6379/3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Redis.Addr != "cache.internal:6379" || cfg.Redis.Password != "pw" || cfg.Redis.DB != 3 {
		t.Errorf("redis config not overridden: %+v", cfg.Redis)
	}
}

func TestLoadBareSecondsTimeout(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("HTTP_READ_TIMEOUT", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ReadTimeout.Duration() != 25*time.Second {
		t.Errorf("read timeout = %v, want 25s", cfg.HTTP.ReadTimeout.Duration())
	}
}
