package cache

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Client envolve o redis. Sem REDIS_ADDR (ou com o servidor fora do ar) ele
// degrada: leituras sempre erram o cache e os locks passam a ser locais.
type Client struct {
	rdb *redis.Client

	mu    sync.Mutex
	local map[string]string
}

func New(addr, password string) *Client {
	c := &Client{local: map[string]string{}}
	if addr == "" {
		log.Println("[cache] REDIS_ADDR not set, running without redis")
		return c
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] redis unavailable at %s: %v", addr, err)
		rdb.Close()
		return c
	}

	c.rdb = rdb
	log.Println("[cache] redis connected")
	return c
}

func (c *Client) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

// ============================================
// JSON values
// ============================================

func (c *Client) GetJSON(ctx context.Context, key string, v any) bool {
	if !c.Enabled() {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (c *Client) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}

func (c *Client) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}

// ============================================
// Locks
// ============================================

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Acquire tenta pegar o lock sem esperar. ok=false significa que outro
// processo já segura a chave.
func (c *Client) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	token := uuid.NewString()

	if !c.Enabled() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, held := c.local[key]; held {
			return nil, false, nil
		}
		c.local[key] = token
		return func() {
			c.mu.Lock()
			if c.local[key] == token {
				delete(c.local, key)
			}
			c.mu.Unlock()
		}, true, nil
	}

	ok, err := c.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, c.rdb, []string{key}, token).Err(); err != nil && err != redis.Nil {
			log.Printf("[cache] release %s: %v", key, err)
		}
	}, true, nil
}
