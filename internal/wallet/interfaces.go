// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wallet connects the client to the user's Ethereum wallet.
//
// A [Provider] answers the three requests the notes client needs:
// eth_accounts, eth_getEncryptionPublicKey and eth_decrypt. Two providers
// ship with the package: an HTTP JSON-RPC provider for external wallets and
// a local provider backed by a passphrase-sealed key file. Both may refuse a
// request, and refusals surface as [ErrUserRejected].
//
// Wallet state is carried explicitly in a [Session] value that callers pass
// into every operation that needs it.
package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_provider_mock.go -package=mock

// Provider is the subset of the EIP-1193 surface used by the notes client.
// Every call may block on a user prompt.
type Provider interface {
	// Accounts returns the accounts the wallet exposes, first one preferred.
	Accounts(ctx context.Context) ([]common.Address, error)

	// EncryptionPublicKey returns the base64 x25519 public key of account.
	EncryptionPublicKey(ctx context.Context, account common.Address) (string, error)

	// Decrypt opens a payload serialized as "0x" + hex(JSON) for account.
	Decrypt(ctx context.Context, serialized string, account common.Address) (string, error)
}

// Signer is implemented by providers that can authorize transactions.
type Signer interface {
	// TransactOpts returns options that sign as account on chainID.
	TransactOpts(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error)
}
