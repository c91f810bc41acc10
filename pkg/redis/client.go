package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wonny/ohaeng/backend/pkg/config"
)

// connectTimeout 기동 시 PING 대기 시간
const connectTimeout = 3 * time.Second

// Client wraps the Redis client with additional utilities
// ⭐ SSOT: Redis 연결은 여기서만 관리
// REDIS_ENABLED=false 이면 모든 헬퍼가 no-op (캐시 miss, 레이트 리밋 통과)
type Client struct {
	rdb     *redis.Client
	addr    string
	enabled bool
}

// New creates a new Redis client
func New(cfg *config.Config) (*Client, error) {
	if !cfg.Redis.Enabled {
		return &Client{enabled: false}, nil
	}

	addr := fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed (%s): %w", addr, err)
	}

	return &Client{
		rdb:     rdb,
		addr:    addr,
		enabled: true,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

// Enabled returns whether Redis is enabled
func (c *Client) Enabled() bool {
	return c.enabled
}

// Addr host:port (empty when disabled)
func (c *Client) Addr() string {
	return c.addr
}

// Ping measures a round trip; a disabled client reports zero latency
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	if !c.enabled {
		return 0, nil
	}

	start := time.Now()
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return 0, fmt.Errorf("redis ping failed: %w", err)
	}
	return time.Since(start), nil
}

// Redis returns the underlying redis client for advanced usage
func (c *Client) Redis() *redis.Client {
	return c.rdb
}
