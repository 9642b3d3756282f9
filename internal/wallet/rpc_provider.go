// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/utils"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/go-resty/resty/v2"
)

// EIP-1193 and JSON-RPC error codes mapped by the provider.
const (
	codeUserRejected       = 4001
	codeUnauthorized       = 4100
	codeUnsupportedMethod  = 4200
	codeMethodNotFound     = -32601
	jsonRPCVersion         = "2.0"
	methodAccounts         = "eth_accounts"
	methodEncryptionPubKey = "eth_getEncryptionPublicKey"
	methodDecrypt          = "eth_decrypt"
	methodSignTransaction  = "eth_signTransaction"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RPCProvider talks JSON-RPC 2.0 over HTTP to an external wallet such as
// Frame or a Clef-compatible signer.
type RPCProvider struct {
	client *utils.HTTPClient
	url    string
	log    *logger.Logger
	nextID atomic.Uint64
}

// NewRPCProvider creates a provider for cfg.RPCURL. cfg.RequestTimeout bounds
// each request including the user's approval time.
func NewRPCProvider(cfg config.Wallet, log *logger.Logger) *RPCProvider {
	return &RPCProvider{
		client: utils.NewJSONClient(cfg.RPCURL, cfg.RequestTimeout),
		url:    cfg.RPCURL,
		log:    log,
	}
}

func (p *RPCProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.call(ctx, methodAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) EncryptionPublicKey(ctx context.Context, account common.Address) (string, error) {
	var key string
	if err := p.call(ctx, methodEncryptionPubKey, &key, account); err != nil {
		return "", err
	}
	return key, nil
}

func (p *RPCProvider) Decrypt(ctx context.Context, serialized string, account common.Address) (string, error) {
	var plaintext string
	if err := p.call(ctx, methodDecrypt, &plaintext, serialized, account); err != nil {
		return "", err
	}
	return plaintext, nil
}

// TransactOpts implements [Signer] by delegating each signature to
// eth_signTransaction.
func (p *RPCProvider) TransactOpts(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	signer := types.LatestSignerForChainID(chainID)

	return &bind.TransactOpts{
		From:    account,
		Context: ctx,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if from != account {
				return nil, bind.ErrNotAuthorized
			}

			var raw json.RawMessage
			if err := p.call(ctx, methodSignTransaction, &raw, txArgs(from, tx, chainID)); err != nil {
				return nil, err
			}

			signed, err := decodeSignedTx(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
			}

			sender, err := types.Sender(signer, signed)
			if err != nil || sender != from {
				return nil, fmt.Errorf("%w: signed by %s", ErrUnauthorizedAccount, sender.Hex())
			}
			return signed, nil
		},
	}, nil
}

func (p *RPCProvider) call(ctx context.Context, method string, result any, params ...any) error {
	if params == nil {
		params = []any{}
	}

	req := rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      p.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(p.url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %v", ErrProviderFailed, method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var out rpcResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrProviderFailed, method, err)
	}
	if out.Error != nil {
		p.log.Debug().Str("method", method).Int("code", out.Error.Code).Msg("wallet refused request")
		return mapRPCError(method, out.Error)
	}

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(out.Result, result); err != nil {
		return fmt.Errorf("%w: %s: decode result: %v", ErrProviderFailed, method, err)
	}
	return nil
}

func mapRPCError(method string, e *rpcError) error {
	switch e.Code {
	case codeUserRejected:
		return fmt.Errorf("%w: %s: %s", ErrUserRejected, method, e.Message)
	case codeUnauthorized:
		return fmt.Errorf("%w: %s: %s", ErrUnauthorizedAccount, method, e.Message)
	case codeUnsupportedMethod, codeMethodNotFound:
		return fmt.Errorf("%w: %s: %s", ErrUnsupportedMethod, method, e.Message)
	default:
		return fmt.Errorf("%w: %s: code %d: %s", ErrProviderFailed, method, e.Code, e.Message)
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: http %d: %s", ErrUnauthorizedAccount, resp.StatusCode(), body)
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: http %d: %s", ErrUnsupportedMethod, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrProviderFailed, resp.StatusCode(), body)
	}
}

func txArgs(from common.Address, tx *types.Transaction, chainID *big.Int) map[string]any {
	args := map[string]any{
		"from":    from,
		"gas":     hexutil.Uint64(tx.Gas()),
		"value":   (*hexutil.Big)(tx.Value()),
		"data":    hexutil.Bytes(tx.Data()),
		"nonce":   hexutil.Uint64(tx.Nonce()),
		"chainId": (*hexutil.Big)(chainID),
	}
	if to := tx.To(); to != nil {
		args["to"] = *to
	}

	if tx.Type() == types.DynamicFeeTxType {
		args["maxFeePerGas"] = (*hexutil.Big)(tx.GasFeeCap())
		args["maxPriorityFeePerGas"] = (*hexutil.Big)(tx.GasTipCap())
	} else {
		args["gasPrice"] = (*hexutil.Big)(tx.GasPrice())
	}
	return args
}

// decodeSignedTx accepts both a bare raw hex string and the {"raw": ...}
// object some signers return.
func decodeSignedTx(result json.RawMessage) (*types.Transaction, error) {
	var raw hexutil.Bytes
	if err := json.Unmarshal(result, &raw); err != nil {
		var wrapped struct {
			Raw hexutil.Bytes `json:"raw"`
		}
		if err2 := json.Unmarshal(result, &wrapped); err2 != nil || len(wrapped.Raw) == 0 {
			return nil, errors.Join(err, err2)
		}
		raw = wrapped.Raw
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("unmarshal signed tx: %w", err)
	}
	return tx, nil
}
