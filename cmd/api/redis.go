package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/5w1tchy/nexus-admin/internal/config"
)

// newRedis returns nil when Redis is not configured. A configured but
// unreachable Redis is a startup error.
func newRedis(ctx context.Context, cfg config.Config, logger *zap.Logger) (*redis.Client, error) {
	var rdb *redis.Client
	switch {
	case cfg.RedisURL != "":
		// Path A: full URL, e.g. rediss://default:<token>@host:port
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTASH_REDIS_URL: %w", err)
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	case cfg.RedisAddr != "":
		// Path B: split fields
		opt := &redis.Options{
			Addr:         cfg.RedisAddr,
			Username:     cfg.RedisUser,
			Password:     cfg.RedisPassword,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		}
		if cfg.RedisPassword != "" {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		rdb = redis.NewClient(opt)
	default:
		return nil, nil
	}

	// Fail fast if Redis isn't reachable
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	logger.Info("connected to redis")
	return rdb, nil
}
