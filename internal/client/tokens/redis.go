package tokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps slots as plain string keys under a prefix, e.g.
// "socialcli:access_token".
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(slot Slot) string {
	return s.prefix + string(slot)
}

func (s *RedisStore) Get(ctx context.Context, slot Slot) (string, error) {
	v, err := s.client.Get(ctx, s.key(slot)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", s.key(slot), err)
	}
	return v, nil
}

// Set wraps the writes in MULTI/EXEC.
func (s *RedisStore) Set(ctx context.Context, values map[Slot]string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, s.key(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, slots ...Slot) error {
	if len(slots) == 0 {
		return nil
	}
	keys := make([]string, len(slots))
	for i, k := range slots {
		keys[i] = s.key(k)
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
