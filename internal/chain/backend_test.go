package chain

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedBackend_Forwards(t *testing.T) {
	fake := newFakeBackend()
	b := NewRateLimitedBackend(fake, 1000)

	id, err := b.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fake.chainID, id)

	code, err := b.CodeAt(context.Background(), common.Address{}, nil)
	require.NoError(t, err)
	assert.Equal(t, fake.code, code)

	assert.Equal(t, 2, fake.calls)
}

func TestRateLimitedBackend_Throttles(t *testing.T) {
	fake := newFakeBackend()
	b := NewRateLimitedBackend(fake, 0.01)

	_, err := b.ChainID(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = b.ChainID(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, fake.calls, "throttled call must not reach the node")
}
