package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/company-intel-api/internal/config"
)

type cachedValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, KeyPrefix, ttl), server
}

func TestRedisCache_GetSet(t *testing.T) {
	t.Run("Grava e lê com prefixo", func(t *testing.T) {
		c, server := newTestCache(t, time.Minute)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "industry:TECH", cachedValue{Name: "Technology", Count: 3}))

		assert.True(t, server.Exists(KeyPrefix+"industry:TECH"))

		var got cachedValue
		require.NoError(t, c.Get(ctx, "industry:TECH", &got))
		assert.Equal(t, cachedValue{Name: "Technology", Count: 3}, got)
	})

	t.Run("Chave ausente retorna ErrMiss", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		var got cachedValue
		err := c.Get(context.Background(), "nada", &got)

		assert.ErrorIs(t, err, ErrMiss)
	})

	t.Run("Chave expira após o TTL", func(t *testing.T) {
		c, server := newTestCache(t, time.Minute)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "search:x", []int{1, 2}))
		server.FastForward(2 * time.Minute)

		var got []int
		assert.ErrorIs(t, c.Get(ctx, "search:x", &got), ErrMiss)
	})

	t.Run("Conteúdo inválido retorna erro de decodificação", func(t *testing.T) {
		c, server := newTestCache(t, time.Minute)
		require.NoError(t, server.Set(KeyPrefix+"broken", "{not json"))

		var got cachedValue
		err := c.Get(context.Background(), "broken", &got)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMiss)
	})
}

func TestNew(t *testing.T) {
	t.Run("Sem endereço usa cache desabilitado", func(t *testing.T) {
		c, err := New(context.Background(), config.Cache{})

		require.NoError(t, err)
		require.NoError(t, c.Set(context.Background(), "k", 1))

		var got int
		assert.ErrorIs(t, c.Get(context.Background(), "k", &got), ErrMiss)
	})

	t.Run("Conecta no redis configurado", func(t *testing.T) {
		server := miniredis.RunT(t)

		c, err := New(context.Background(), config.Cache{RedisAddr: server.Addr(), TTL: time.Minute})

		require.NoError(t, err)
		defer c.Close()
		assert.IsType(t, &RedisCache{}, c)
	})

	t.Run("Falha quando o redis não responde", func(t *testing.T) {
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		_, err := New(context.Background(), config.Cache{RedisAddr: addr})

		assert.Error(t, err)
	})
}
