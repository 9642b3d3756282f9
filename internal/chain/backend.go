package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/time/rate"
)

// Dial connects to rpcURL and throttles the connection to rps requests per
// second.
func Dial(ctx context.Context, rpcURL string, rps float64) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, mapChainError("dial", err)
	}
	return NewRateLimitedBackend(client, rps), nil
}

// rateLimitedBackend waits on a token bucket before forwarding each call.
type rateLimitedBackend struct {
	next    Backend
	limiter *rate.Limiter
}

// NewRateLimitedBackend wraps next with a limiter of rps requests per second
// and a burst of at least one.
func NewRateLimitedBackend(next Backend, rps float64) Backend {
	burst := int(math.Ceil(rps))
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedBackend{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (b *rateLimitedBackend) wait(ctx context.Context) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	return nil
}

func (b *rateLimitedBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.CodeAt(ctx, contract, blockNumber)
}

func (b *rateLimitedBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.CallContract(ctx, call, blockNumber)
}

func (b *rateLimitedBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.HeaderByNumber(ctx, number)
}

func (b *rateLimitedBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.PendingCodeAt(ctx, account)
}

func (b *rateLimitedBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if err := b.wait(ctx); err != nil {
		return 0, err
	}
	return b.next.PendingNonceAt(ctx, account)
}

func (b *rateLimitedBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.SuggestGasPrice(ctx)
}

func (b *rateLimitedBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.SuggestGasTipCap(ctx)
}

func (b *rateLimitedBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if err := b.wait(ctx); err != nil {
		return 0, err
	}
	return b.next.EstimateGas(ctx, call)
}

func (b *rateLimitedBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := b.wait(ctx); err != nil {
		return err
	}
	return b.next.SendTransaction(ctx, tx)
}

func (b *rateLimitedBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.FilterLogs(ctx, query)
}

func (b *rateLimitedBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.SubscribeFilterLogs(ctx, query, ch)
}

func (b *rateLimitedBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.TransactionReceipt(ctx, txHash)
}

func (b *rateLimitedBackend) ChainID(ctx context.Context) (*big.Int, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.next.ChainID(ctx)
}
