package chain

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamehash(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, common.HexToHash(tt.want), Namehash(tt.name))
		})
	}
}

func TestReverseNode(t *testing.T) {
	account := common.HexToAddress("0x00000000000000000000000000000000000000A1")
	assert.Equal(t,
		Namehash("00000000000000000000000000000000000000a1.addr.reverse"),
		ReverseNode(account),
	)
}

func TestShortAddress(t *testing.T) {
	account := common.HexToAddress("0x1234567890abcdef1234567890abcdef12345678")
	assert.Equal(t, "0x1234...5678", ShortAddress(account))
}

// ensFake answers registry and resolver calls for a single account.
type ensFake struct {
	registry abi.ABI
	resolver abi.ABI

	resolverAddr common.Address
	reverseName  string
	forwardAddr  common.Address
	failRegistry bool
}

func newENSFake(t *testing.T) *ensFake {
	return &ensFake{
		registry:     mustABI(t, ensRegistryABIJSON),
		resolver:     mustABI(t, ensResolverABIJSON),
		resolverAddr: common.HexToAddress("0x0000000000000000000000000000000000000E45"),
	}
}

func (e *ensFake) answer(call ethereum.CallMsg) ([]byte, error) {
	switch {
	case *call.To == ENSRegistryAddress:
		if e.failRegistry {
			return nil, errors.New("registry down")
		}
		return e.registry.Methods["resolver"].Outputs.Pack(e.resolverAddr)
	case *call.To == e.resolverAddr && bytes.HasPrefix(call.Data, e.resolver.Methods["name"].ID):
		return e.resolver.Methods["name"].Outputs.Pack(e.reverseName)
	case *call.To == e.resolverAddr && bytes.HasPrefix(call.Data, e.resolver.Methods["addr"].ID):
		return e.resolver.Methods["addr"].Outputs.Pack(e.forwardAddr)
	}
	return nil, errors.New("unexpected call")
}

func TestENSResolver_LookupName(t *testing.T) {
	tests := []struct {
		name      string
		configure func(e *ensFake)
		want      string
		wantErr   error
	}{
		{
			name: "verified name",
			configure: func(e *ensFake) {
				e.reverseName = "alice.eth"
				e.forwardAddr = alice
			},
			want: "alice.eth",
		},
		{
			name: "forward record points elsewhere",
			configure: func(e *ensFake) {
				e.reverseName = "alice.eth"
				e.forwardAddr = common.HexToAddress("0xbad")
			},
		},
		{
			name:      "no reverse record",
			configure: func(e *ensFake) {},
		},
		{
			name:      "no resolver",
			configure: func(e *ensFake) { e.resolverAddr = common.Address{} },
		},
		{
			name:      "registry failure",
			configure: func(e *ensFake) { e.failRegistry = true },
			wantErr:   ErrChainCallFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newENSFake(t)
			tt.configure(fake)

			backend := newFakeBackend()
			backend.onCall = fake.answer

			r, err := NewENSResolver(backend)
			require.NoError(t, err)

			name, err := r.LookupName(context.Background(), alice)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

type staticResolver struct {
	name string
	err  error
}

func (s staticResolver) LookupName(context.Context, common.Address) (string, error) {
	return s.name, s.err
}

func TestDisplayName(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "alice.eth", DisplayName(ctx, staticResolver{name: "alice.eth"}, alice))
	assert.Equal(t, ShortAddress(alice), DisplayName(ctx, staticResolver{}, alice))
	assert.Equal(t, ShortAddress(alice), DisplayName(ctx, staticResolver{err: errors.New("x")}, alice))
	assert.Equal(t, ShortAddress(alice), DisplayName(ctx, NoopResolver(), alice))
}
