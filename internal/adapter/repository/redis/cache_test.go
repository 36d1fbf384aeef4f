package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", []byte("bar"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "foo")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(val) != "bar" {
		t.Fatalf("expected bar, got %s", val)
	}
}

func TestCacheGetMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)

	val, err := cache.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("expected miss without error, got %v", err)
	}
	if val != nil {
		t.Fatalf("expected nil value on miss, got %q", val)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", []byte("bar"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "foo"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	val, err := cache.Get(ctx, "foo")
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if val != nil {
		t.Fatalf("expected deleted key to be a miss, got %q", val)
	}
}
