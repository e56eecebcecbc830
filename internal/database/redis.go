package database

import (
	"context"

	"github.com/plancare/customer-service/internal/config"
	"github.com/plancare/customer-service/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for cfg, or nil when Redis is not configured.
// A failed ping is logged; the client is still returned so that go-redis can
// reconnect once the server is up.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	addr := cfg.Addr()
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Password, DB: cfg.DB})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
	} else {
		logger.Infof("connected to Redis at %s", addr)
	}
	return rdb
}
