package persistence

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}
