package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	SetHashField(ctx context.Context, key, field string, value interface{}) error
	GetHash(ctx context.Context, key string) (map[string]string, error)
	DeleteHashFields(ctx context.Context, key string, fields ...string) error
	Expire(ctx context.Context, key string, exp time.Duration) error
}
