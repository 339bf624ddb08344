package cache

import (
	"context"
	"strings"

	"credopass/internal/lib"
	"credopass/internal/lib/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from cfg and pings it once.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	const op = "cache.NewRedisClient"

	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, lib.Err(op, err)
	}

	return client, nil
}

// redisOptions accepts either host:port or a redis://, rediss:// or unix://
// URL. Password and DB from cfg override the URL only when set.
func redisOptions(cfg config.Redis) (*redis.Options, error) {
	if !strings.Contains(cfg.Addr, "://") {
		return &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}, nil
	}

	opts, err := redis.ParseURL(cfg.Addr)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	return opts, nil
}
