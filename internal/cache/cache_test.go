package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/mock"
	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var account = common.HexToAddress("0x00000000000000000000000000000000000000A1")

func newTestCache(t *testing.T) (*RedisNameCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisNameCacheWithClient(client, time.Minute), srv
}

func TestRedisNameCache(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, account)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, account, "alice.eth"))
	name, ok, err := c.Get(ctx, account)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice.eth", name)

	// the key is case-insensitive and expires
	assert.True(t, srv.Exists("ether-notes:name:0x00000000000000000000000000000000000000a1"))
	srv.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, account)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisNameCache_EmptyNameIsCached(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, account, ""))
	name, ok, err := c.Get(ctx, account)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, name)
}

func TestRedisNameCache_ServerDown(t *testing.T) {
	c, srv := newTestCache(t)
	srv.Close()

	_, _, err := c.Get(context.Background(), account)
	assert.Error(t, err)
}

func TestNewRedisNameCache_PingFails(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := NewRedisNameCache(context.Background(), configRedis(addr))
	assert.Error(t, err)
}

func TestCachedResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips the resolver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock.NewMockNameResolver(ctrl)
		c, _ := newTestCache(t)
		require.NoError(t, c.Set(ctx, account, "cached.eth"))

		name, err := CachedResolver(next, c, logger.Nop()).LookupName(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, "cached.eth", name)
	})

	t.Run("miss resolves and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock.NewMockNameResolver(ctrl)
		next.EXPECT().LookupName(gomock.Any(), account).Return("alice.eth", nil).Times(1)
		c, _ := newTestCache(t)
		r := CachedResolver(next, c, logger.Nop())

		for range 2 {
			name, err := r.LookupName(ctx, account)
			require.NoError(t, err)
			assert.Equal(t, "alice.eth", name)
		}
	})

	t.Run("resolver error is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock.NewMockNameResolver(ctrl)
		next.EXPECT().LookupName(gomock.Any(), account).Return("", errors.New("rpc down"))
		c, _ := newTestCache(t)

		_, err := CachedResolver(next, c, logger.Nop()).LookupName(ctx, account)
		require.Error(t, err)

		_, ok, err := c.Get(ctx, account)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cache failure falls through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock.NewMockNameResolver(ctrl)
		next.EXPECT().LookupName(gomock.Any(), account).Return("alice.eth", nil)
		c := mock.NewMockNameCache(ctrl)
		c.EXPECT().Get(gomock.Any(), account).Return("", false, errors.New("down"))
		c.EXPECT().Set(gomock.Any(), account, "alice.eth").Return(errors.New("down"))

		name, err := CachedResolver(next, c, logger.Nop()).LookupName(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, "alice.eth", name)
	})
}

func configRedis(addr string) config.Redis {
	return config.Redis{Address: addr, NameTTL: time.Minute}
}
