package cache

import (
	"context"
	"testing"
	"time"
)

func TestLocalLockWithoutRedis(t *testing.T) {
	c := New("", "")
	ctx := context.Background()

	release, ok, err := c.Acquire(ctx, "closing:2026-10-15", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	if _, ok, _ := c.Acquire(ctx, "closing:2026-10-15", time.Minute); ok {
		t.Fatal("second acquire on same key should fail")
	}
	if _, ok, _ := c.Acquire(ctx, "closing:2026-10-16", time.Minute); !ok {
		t.Fatal("other key should be free")
	}

	release()
	if _, ok, _ := c.Acquire(ctx, "closing:2026-10-15", time.Minute); !ok {
		t.Fatal("key should be free after release")
	}
}

func TestJSONMissesWithoutRedis(t *testing.T) {
	c := New("", "")
	c.SetJSON(context.Background(), "k", map[string]int{"a": 1}, time.Minute)

	var out map[string]int
	if c.GetJSON(context.Background(), "k", &out) {
		t.Error("expected cache miss without redis")
	}
}
