// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const defaultReceiptPoll = 2 * time.Second

// noteTuple mirrors struct EtherNotes.Note.
type noteTuple struct {
	Author    common.Address
	Content   string
	Timestamp *big.Int
}

type notesClient struct {
	backend    Backend
	notes      *bind.BoundContract
	nft        *bind.BoundContract
	nftAddress common.Address
	chainID    *big.Int

	receiptTimeout time.Duration
	pollInterval   time.Duration

	log *logger.Logger
}

// NewNotesClient binds the contracts named in cfg to backend. An empty
// cfg.NFTAddress leaves minting disabled.
func NewNotesClient(cfg config.Chain, backend Backend, log *logger.Logger) (NotesClient, error) {
	notesABI, err := parseABI("notes", notesABIJSON)
	if err != nil {
		return nil, err
	}

	c := &notesClient{
		backend:        backend,
		notes:          bind.NewBoundContract(common.HexToAddress(cfg.NotesAddress), notesABI, backend, backend, backend),
		receiptTimeout: cfg.ReceiptTimeout,
		pollInterval:   defaultReceiptPoll,
		log:            log,
	}

	if cfg.ChainID != 0 {
		c.chainID = big.NewInt(cfg.ChainID)
	}

	if cfg.NFTAddress != "" {
		nftABI, err := parseABI("nft", nftABIJSON)
		if err != nil {
			return nil, err
		}
		c.nftAddress = common.HexToAddress(cfg.NFTAddress)
		c.nft = bind.NewBoundContract(c.nftAddress, nftABI, backend, backend, backend)
	}

	return c, nil
}

func (c *notesClient) ChainID(ctx context.Context) (*big.Int, error) {
	if c.chainID != nil {
		return new(big.Int).Set(c.chainID), nil
	}

	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, mapChainError("chain id", err)
	}
	return id, nil
}

func (c *notesClient) AddNote(ctx context.Context, auth *bind.TransactOpts, content string) (common.Hash, error) {
	opts := withContext(ctx, auth)

	tx, err := c.notes.Transact(opts, "addNote", content)
	if err != nil {
		return common.Hash{}, mapChainError("addNote", err)
	}

	c.log.Info().Str("tx", tx.Hash().Hex()).Int("content_len", len(content)).Msg("addNote sent")
	return tx.Hash(), nil
}

func (c *notesClient) GetNotesByUser(ctx context.Context, user common.Address) ([]models.Note, error) {
	var out []any
	if err := c.notes.Call(&bind.CallOpts{Context: ctx}, &out, "getNotesByUser", user); err != nil {
		return nil, mapChainError("getNotesByUser", err)
	}
	if len(out) != 1 {
		return nil, mapChainError("getNotesByUser", fmt.Errorf("unexpected %d return values", len(out)))
	}

	tuples, ok := abi.ConvertType(out[0], new([]noteTuple)).(*[]noteTuple)
	if !ok {
		return nil, mapChainError("getNotesByUser", errors.New("unexpected return type"))
	}

	notes := make([]models.Note, 0, len(*tuples))
	for _, t := range *tuples {
		var ts uint64
		if t.Timestamp != nil && t.Timestamp.IsUint64() {
			ts = t.Timestamp.Uint64()
		}
		notes = append(notes, models.Note{Author: t.Author, Content: t.Content, Timestamp: ts})
	}
	return notes, nil
}

func (c *notesClient) MintNote(ctx context.Context, auth *bind.TransactOpts, recipient common.Address, content string, timestamp uint64) (common.Hash, error) {
	if c.nft == nil {
		return common.Hash{}, mapChainError("mintNote", ErrMintDisabled)
	}

	opts := withContext(ctx, auth)

	tx, err := c.nft.Transact(opts, "mintNote", recipient, content, new(big.Int).SetUint64(timestamp))
	if err != nil {
		return common.Hash{}, mapChainError("mintNote", err)
	}

	c.log.Info().Str("tx", tx.Hash().Hex()).Str("recipient", recipient.Hex()).Msg("mintNote sent")
	return tx.Hash(), nil
}

func (c *notesClient) WaitAdded(ctx context.Context, hash common.Hash) error {
	if _, err := c.waitReceipt(ctx, hash); err != nil {
		return mapChainError("wait addNote", err)
	}
	return nil
}

func (c *notesClient) WaitMinted(ctx context.Context, hash common.Hash) (*big.Int, error) {
	receipt, err := c.waitReceipt(ctx, hash)
	if err != nil {
		return nil, mapChainError("wait mintNote", err)
	}

	tokenID := c.tokenIDFromReceipt(receipt)
	if tokenID == nil {
		return nil, mapChainError("wait mintNote", ErrTokenIDMissing)
	}
	return tokenID, nil
}

func (c *notesClient) TransactionStatus(ctx context.Context, hash common.Hash) (models.TxStatus, *big.Int, error) {
	receipt, err := c.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return models.TxPending, nil, nil
	}
	if err != nil {
		return "", nil, mapChainError("receipt", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return models.TxFailed, nil, nil
	}
	return models.TxConfirmed, c.tokenIDFromReceipt(receipt), nil
}

// waitReceipt polls until hash is mined, ctx ends or the receipt timeout
// passes. A reverted transaction is reported as ErrTxReverted.
func (c *notesClient) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if c.receiptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.receiptTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return nil, fmt.Errorf("%w: %s", ErrTxReverted, hash.Hex())
			}
			return receipt, nil
		case !errors.Is(err, ethereum.NotFound):
			return nil, err
		}

		c.log.Debug().Str("tx", hash.Hex()).Msg("transaction not yet mined")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *notesClient) tokenIDFromReceipt(receipt *types.Receipt) *big.Int {
	if c.nft == nil {
		return nil
	}
	for _, l := range receipt.Logs {
		if l.Address == c.nftAddress && len(l.Topics) == 4 && l.Topics[0] == transferTopic {
			return new(big.Int).SetBytes(l.Topics[3].Bytes())
		}
	}
	return nil
}

func withContext(ctx context.Context, auth *bind.TransactOpts) *bind.TransactOpts {
	opts := *auth
	opts.Context = ctx
	return &opts
}
