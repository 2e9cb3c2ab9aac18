package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisCache_Unreachable(t *testing.T) {
	_, err := NewRedisCache("redis://127.0.0.1:1/0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestRedisCache_ErrorsSurfaceWhenServerDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCacheFromClient(client)
	defer c.Close()

	ctx := context.Background()
	var dest []int
	err := c.GetJSON(ctx, "favorites:user:1", &dest)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Contains(t, err.Error(), "favorites:user:1")

	assert.Error(t, c.Delete(ctx, "favorites:user:1"))

	assert.Error(t, c.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))
}

func TestRedisCache_SetJSONRejectsUnmarshalable(t *testing.T) {
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	defer c.Close()

	err := c.SetJSON(context.Background(), "k", make(chan int), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal JSON")
}
