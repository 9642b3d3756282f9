// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProvider создаёт RPCProvider, направленный на тестовый сервер
func newTestProvider(t *testing.T, handler func(req rpcRequest) (any, *rpcError)) *RPCProvider {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)

		result, rpcErr := handler(req)
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return NewRPCProvider(config.Wallet{RPCURL: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
}

// ── eth_accounts ────────────────────────────────────────────────────────────

func TestRPCProvider_Accounts(t *testing.T) {
	p := newTestProvider(t, func(req rpcRequest) (any, *rpcError) {
		assert.Equal(t, "eth_accounts", req.Method)
		assert.Empty(t, req.Params)
		return []string{alice.Hex(), bob.Hex()}, nil
	})

	got, err := p.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []common.Address{alice, bob}, got)
}

// ── eth_getEncryptionPublicKey ──────────────────────────────────────────────

func TestRPCProvider_EncryptionPublicKey(t *testing.T) {
	p := newTestProvider(t, func(req rpcRequest) (any, *rpcError) {
		assert.Equal(t, "eth_getEncryptionPublicKey", req.Method)
		require.Len(t, req.Params, 1)
		assert.Equal(t, common.HexToAddress(req.Params[0].(string)), alice)
		return "bXlwdWJsaWNrZXk=", nil
	})

	got, err := p.EncryptionPublicKey(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "bXlwdWJsaWNrZXk=", got)
}

// ── eth_decrypt ─────────────────────────────────────────────────────────────

func TestRPCProvider_Decrypt(t *testing.T) {
	p := newTestProvider(t, func(req rpcRequest) (any, *rpcError) {
		assert.Equal(t, "eth_decrypt", req.Method)
		require.Len(t, req.Params, 2)
		assert.Equal(t, "0xdeadbeef", req.Params[0])
		return "plain text", nil
	})

	got, err := p.Decrypt(context.Background(), "0xdeadbeef", alice)
	require.NoError(t, err)
	assert.Equal(t, "plain text", got)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestRPCProvider_ErrorCodes(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{code: 4001, want: ErrUserRejected},
		{code: 4100, want: ErrUnauthorizedAccount},
		{code: 4200, want: ErrUnsupportedMethod},
		{code: -32601, want: ErrUnsupportedMethod},
		{code: -32603, want: ErrProviderFailed},
	}

	for _, tt := range tests {
		t.Run(tt.want.Error(), func(t *testing.T) {
			p := newTestProvider(t, func(rpcRequest) (any, *rpcError) {
				return nil, &rpcError{Code: tt.code, Message: "nope"}
			})

			_, err := p.Decrypt(context.Background(), "0x00", alice)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRPCProvider_HTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusUnauthorized, want: ErrUnauthorizedAccount},
		{status: http.StatusNotFound, want: ErrUnsupportedMethod},
		{status: http.StatusBadGateway, want: ErrProviderFailed},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p := NewRPCProvider(config.Wallet{RPCURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())
			_, err := p.Accounts(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRPCProvider_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewRPCProvider(config.Wallet{RPCURL: url, RequestTimeout: time.Second}, logger.Nop())
	_, err := p.Accounts(context.Background())
	assert.ErrorIs(t, err, ErrProviderFailed)
}

func TestRPCProvider_BadResult(t *testing.T) {
	p := newTestProvider(t, func(rpcRequest) (any, *rpcError) {
		return 42, nil
	})

	_, err := p.EncryptionPublicKey(context.Background(), alice)
	assert.ErrorIs(t, err, ErrProviderFailed)
}

// ── eth_signTransaction ─────────────────────────────────────────────────────

func TestRPCProvider_TransactOpts(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	from := ethcrypto.PubkeyToAddress(key.PublicKey)
	chainID := big.NewInt(31337)

	to := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     3,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(10),
		Gas:       50000,
		To:        &to,
		Data:      []byte{0x01, 0x02},
	})
	signedByWallet, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	require.NoError(t, err)
	raw, err := signedByWallet.MarshalBinary()
	require.NoError(t, err)

	p := newTestProvider(t, func(req rpcRequest) (any, *rpcError) {
		assert.Equal(t, "eth_signTransaction", req.Method)
		args := req.Params[0].(map[string]any)
		assert.Equal(t, "0x3", args["nonce"])
		assert.Equal(t, "0xa", args["maxFeePerGas"])
		assert.NotContains(t, args, "gasPrice")
		return map[string]any{"raw": hexutil.Encode(raw)}, nil
	})

	opts, err := p.TransactOpts(context.Background(), from, chainID)
	require.NoError(t, err)

	got, err := opts.Signer(from, tx)
	require.NoError(t, err)
	assert.Equal(t, signedByWallet.Hash(), got.Hash())

	_, err = opts.Signer(alice, tx)
	require.Error(t, err)
}

func TestRPCProvider_TransactOptsWrongSigner(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	chainID := big.NewInt(1)

	tx := types.NewTx(&types.LegacyTx{Nonce: 0, Gas: 21000, GasPrice: big.NewInt(1)})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	require.NoError(t, err)
	raw, err := signed.MarshalBinary()
	require.NoError(t, err)

	p := newTestProvider(t, func(rpcRequest) (any, *rpcError) {
		return hexutil.Encode(raw), nil
	})

	opts, err := p.TransactOpts(context.Background(), alice, chainID)
	require.NoError(t, err)

	_, err = opts.Signer(alice, tx)
	assert.ErrorIs(t, err, ErrUnauthorizedAccount)
}
