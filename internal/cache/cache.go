// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps resolved display names of accounts in Redis so that
// the gateway does not repeat ENS lookups on every request.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

const keyPrefix = "ether-notes:name:"

// NameCache stores the resolved name of an account. An empty name is a
// valid cached value meaning "no name set".
type NameCache interface {
	Get(ctx context.Context, account common.Address) (name string, ok bool, err error)
	Set(ctx context.Context, account common.Address, name string) error
}

// RedisNameCache is a [NameCache] on top of go-redis.
type RedisNameCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisNameCache connects to cfg.Address and pings it.
func NewRedisNameCache(ctx context.Context, cfg config.Redis) (*RedisNameCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedisNameCacheWithClient(client, cfg.NameTTL), nil
}

// NewRedisNameCacheWithClient wraps an existing client.
func NewRedisNameCacheWithClient(client redis.UniversalClient, ttl time.Duration) *RedisNameCache {
	return &RedisNameCache{client: client, ttl: ttl}
}

func (c *RedisNameCache) Get(ctx context.Context, account common.Address) (string, bool, error) {
	name, err := c.client.Get(ctx, key(account)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return name, true, nil
}

func (c *RedisNameCache) Set(ctx context.Context, account common.Address, name string) error {
	if err := c.client.Set(ctx, key(account), name, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisNameCache) Close() error {
	return c.client.Close()
}

func key(account common.Address) string {
	return keyPrefix + strings.ToLower(account.Hex())
}

type cachedResolver struct {
	next  chain.NameResolver
	cache NameCache
	log   *logger.Logger
}

// CachedResolver consults cache before next and stores every successful
// lookup, including "no name". Cache failures are logged and bypassed.
func CachedResolver(next chain.NameResolver, cache NameCache, log *logger.Logger) chain.NameResolver {
	return &cachedResolver{next: next, cache: cache, log: log}
}

func (r *cachedResolver) LookupName(ctx context.Context, account common.Address) (string, error) {
	name, ok, err := r.cache.Get(ctx, account)
	if err != nil {
		r.log.Warn().Err(err).Str("account", account.Hex()).Msg("name cache unavailable")
	} else if ok {
		return name, nil
	}

	name, err = r.next.LookupName(ctx, account)
	if err != nil {
		return "", err
	}

	if err = r.cache.Set(ctx, account, name); err != nil {
		r.log.Warn().Err(err).Str("account", account.Hex()).Msg("failed to cache name")
	}
	return name, nil
}
