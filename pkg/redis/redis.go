package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// poolSize подобран под единственного потребителя - очередь оповещений
const poolSize = 10

// NewRedisClient создает клиент Redis для очереди доставки оповещений
// и проверяет соединение до возврата
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
