// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package chain talks to the notes contract, the note NFT contract and the
// ENS registry through go-ethereum's bound contracts.
//
// All node traffic goes through a rate-limited [Backend]. Every error that
// leaves a [NotesClient] method wraps [ErrChainCallFailed].
package chain

import (
	"context"
	"math/big"

	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chain_mock.go -package=mock

// NotesClient wraps the notes and NFT contracts.
type NotesClient interface {
	// ChainID returns the configured chain id or asks the node.
	ChainID(ctx context.Context) (*big.Int, error)

	// AddNote sends addNote(content) signed by auth.
	AddNote(ctx context.Context, auth *bind.TransactOpts, content string) (common.Hash, error)

	// GetNotesByUser returns the notes written by user in contract order.
	GetNotesByUser(ctx context.Context, user common.Address) ([]models.Note, error)

	// MintNote sends mintNote(recipient, content, timestamp) signed by auth.
	MintNote(ctx context.Context, auth *bind.TransactOpts, recipient common.Address, content string, timestamp uint64) (common.Hash, error)

	// WaitAdded blocks until the addNote transaction is mined.
	WaitAdded(ctx context.Context, hash common.Hash) error

	// WaitMinted blocks until the mint is mined and returns its token id.
	WaitMinted(ctx context.Context, hash common.Hash) (*big.Int, error)

	// TransactionStatus reports the state of hash without waiting. The
	// token id is set for confirmed mints.
	TransactionStatus(ctx context.Context, hash common.Hash) (models.TxStatus, *big.Int, error)
}

// NameResolver looks up a human-readable name for an account.
type NameResolver interface {
	// LookupName returns the primary name, or "" when none is set.
	LookupName(ctx context.Context, account common.Address) (string, error)
}

// Backend is the node surface the package needs. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}
