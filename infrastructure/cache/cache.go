package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/config"
)

const KeyPrefix = "company-intel:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMiss indica que a chave não está no cache
var ErrMiss = errors.New("cache: chave não encontrada")

type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Close() error
}

// New retorna o cache Redis, ou um cache que nunca armazena nada quando
// REDIS_ADDR não está configurado
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR não configurado, cache desabilitado")
		return NewNoopCache(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis %s: %w", cfg.RedisAddr, err)
	}

	logrus.WithField("address", cfg.RedisAddr).Info("Cache Redis conectado")

	return NewRedisCache(client, KeyPrefix, cfg.TTL), nil
}

type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("erro ao ler chave %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("erro ao decodificar chave %s: %w", key, err)
	}

	return nil
}

// Set grava o valor em JSON. TTL zero significa sem expiração.
func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao codificar chave %s: %w", key, err)
	}

	return c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type noopCache struct{}

func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) error { return ErrMiss }

func (noopCache) Set(context.Context, string, any) error { return nil }

func (noopCache) Close() error { return nil }
