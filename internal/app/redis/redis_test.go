package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexforge/internal/app/config"
)

func TestGetJWTKey(t *testing.T) {
	assert.Equal(t, "jwt.abc", getJWTKey("abc"))
}

func TestNewFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, config.RedisConfig{
		Host:        "127.0.0.1",
		Port:        1,
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cant ping redis")
}

func TestIsBlacklistedReportsConnectionErrors(t *testing.T) {
	c := NewFromClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	}))
	defer c.Close()

	revoked, err := c.IsBlacklisted(context.Background(), "token")
	assert.Error(t, err)
	assert.False(t, revoked)
}
