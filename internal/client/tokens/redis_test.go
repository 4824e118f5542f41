package tokens

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedAddr returns an address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newUnreachableRedis(t *testing.T) *RedisStore {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        closedAddr(t),
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, "test:")
}

func TestRedisStore_Key(t *testing.T) {
	s := NewRedisStore(nil, "socialcli:")
	assert.Equal(t, "socialcli:access_token", s.key(SlotAccess))
	assert.Equal(t, "socialcli:user", s.key(SlotUser))
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	s := newUnreachableRedis(t)
	ctx := context.Background()

	_, err := s.Get(ctx, SlotAccess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis get test:access_token")

	err = s.Set(ctx, map[Slot]string{SlotAccess: "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis set")

	err = s.Delete(ctx, SlotAccess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis del")
}

func TestRedisStore_DeleteNothing(t *testing.T) {
	s := newUnreachableRedis(t)
	require.NoError(t, s.Delete(context.Background()))
}
