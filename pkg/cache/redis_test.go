package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c := NewRedisCache(slog.New(slog.NewTextHandler(io.Discard, nil)), srv.Addr(), "storefront", time.Minute)
	t.Cleanup(func() { c.Close() })
	return c, srv
}

func TestRedisCache(t *testing.T) {
	tests := []struct {
		name    string
		actions func(t *testing.T, c *RedisCache, srv *miniredis.Miniredis)
	}{
		{
			name: "set and get with prefix and ttl",
			actions: func(t *testing.T, c *RedisCache, srv *miniredis.Miniredis) {
				c.Set("order:1", []byte("pending"))

				v, ok := c.Get("order:1")
				require.True(t, ok)
				assert.Equal(t, "pending", string(v))

				assert.True(t, srv.Exists("storefront:order:1"))
				assert.Equal(t, time.Minute, srv.TTL("storefront:order:1"))
			},
		},
		{
			name: "missing key",
			actions: func(t *testing.T, c *RedisCache, srv *miniredis.Miniredis) {
				_, ok := c.Get("order:missing")
				assert.False(t, ok)
			},
		},
		{
			name: "expired key",
			actions: func(t *testing.T, c *RedisCache, srv *miniredis.Miniredis) {
				c.Set("order:1", []byte("pending"))
				srv.FastForward(2 * time.Minute)

				_, ok := c.Get("order:1")
				assert.False(t, ok)
			},
		},
		{
			name: "set overwrites",
			actions: func(t *testing.T, c *RedisCache, srv *miniredis.Miniredis) {
				c.Set("order:1", []byte("pending"))
				c.Set("order:1", []byte("shipped"))

				v, ok := c.Get("order:1")
				require.True(t, ok)
				assert.Equal(t, "shipped", string(v))
			},
		},
		{
			name: "delete",
			actions: func(t *testing.T, c *RedisCache, srv *miniredis.Miniredis) {
				c.Set("order:1", []byte("pending"))
				c.Delete("order:1")
				c.Delete("order:missing")

				assert.False(t, srv.Exists("storefront:order:1"))
			},
		},
		{
			name: "server down reads as miss",
			actions: func(t *testing.T, c *RedisCache, srv *miniredis.Miniredis) {
				c.Set("order:1", []byte("pending"))
				srv.Close()

				_, ok := c.Get("order:1")
				assert.False(t, ok)
				assert.Error(t, c.Start(context.Background()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestRedisCache(t)
			require.NoError(t, c.Start(context.Background()))
			tt.actions(t, c, srv)
		})
	}
}
