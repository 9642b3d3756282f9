package main

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ether-notes/internal/cache"
	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithNameCache(t *testing.T) {
	ctx := context.Background()
	base := chain.NoopResolver()

	t.Run("no redis configured", func(t *testing.T) {
		resolver, closer := withNameCache(ctx, base, config.Redis{}, logger.Nop())
		assert.Equal(t, base, resolver)
		assert.NoError(t, closer.Close())
	})

	t.Run("redis unreachable", func(t *testing.T) {
		resolver, closer := withNameCache(ctx, base, config.Redis{Address: "127.0.0.1:1"}, logger.Nop())
		assert.Equal(t, base, resolver)
		assert.IsType(t, nopCloser{}, closer)
	})

	t.Run("redis cache is handed back for closing", func(t *testing.T) {
		srv := miniredis.RunT(t)

		resolver, closer := withNameCache(ctx, base, config.Redis{Address: srv.Addr(), NameTTL: time.Minute}, logger.Nop())
		assert.NotEqual(t, base, resolver)
		require.IsType(t, &cache.RedisNameCache{}, closer)

		require.NoError(t, closer.Close())
		// второе закрытие видит уже закрытый клиент
		assert.Error(t, closer.Close())
	})
}

func TestNewNameResolver_WithoutENS(t *testing.T) {
	resolver, closer := newNameResolver(context.Background(), &config.GatewayConfig{}, logger.Nop())
	assert.Equal(t, chain.NoopResolver(), resolver)
	assert.NoError(t, closer.Close())
}
