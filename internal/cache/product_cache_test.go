package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func setupTestCache(t *testing.T) (*ProductCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewProductCache(client, time.Minute, logger), mr
}

func TestProductCache_SetAndGet(t *testing.T) {
	c, _ := setupTestCache(t)

	want := &domain.Product{PrdID: 1, Code: 4901234567890, Name: "Green Tea 500ml", Price: 150, TaxCd: "08"}
	c.Set(context.Background(), want)

	got, ok := c.Get(context.Background(), want.Code)
	if !ok {
		t.Fatal("expected a cache hit after Set")
	}
	if *got != *want {
		t.Errorf("cached product = %+v, want %+v", got, want)
	}
}

func TestProductCache_Miss(t *testing.T) {
	c, _ := setupTestCache(t)

	if _, ok := c.Get(context.Background(), 777); ok {
		t.Error("expected a miss for a code that was never cached")
	}
}

func TestProductCache_Expiry(t *testing.T) {
	c, mr := setupTestCache(t)

	c.Set(context.Background(), &domain.Product{PrdID: 2, Code: 99, Name: "Onigiri", Price: 120, TaxCd: "08"})
	mr.FastForward(2 * time.Minute)

	if _, ok := c.Get(context.Background(), 99); ok {
		t.Error("expected the entry to expire after the TTL")
	}
}

func TestProductCache_CorruptEntryIsAMiss(t *testing.T) {
	c, mr := setupTestCache(t)

	if err := mr.Set("product:code:55", "{not json"); err != nil {
		t.Fatalf("failed to seed corrupt entry: %v", err)
	}
	if _, ok := c.Get(context.Background(), 55); ok {
		t.Error("expected a corrupt entry to behave as a miss")
	}
}

func TestProductCache_RedisDownDegradesToMiss(t *testing.T) {
	c, mr := setupTestCache(t)
	mr.Close()

	if _, ok := c.Get(context.Background(), 1); ok {
		t.Error("expected a miss while redis is unreachable")
	}
	// Set must not panic either.
	c.Set(context.Background(), &domain.Product{Code: 1})
}

func TestProductCache_NilCacheIsSafe(t *testing.T) {
	var c *ProductCache

	if _, ok := c.Get(context.Background(), 1); ok {
		t.Error("nil cache must always miss")
	}
	c.Set(context.Background(), &domain.Product{Code: 1})
}
