package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisProvider stores each snapshot under its key with no expiry.
type RedisProvider struct {
	client *redis.Client
}

func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

func (p *RedisProvider) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := p.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (p *RedisProvider) Save(ctx context.Context, key string, value []byte) error {
	return p.client.Set(ctx, key, value, 0).Err()
}
