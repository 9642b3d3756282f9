// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/codec"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/store"
	"github.com/MKhiriev/ether-notes/internal/utils"
	"github.com/MKhiriev/ether-notes/internal/validators"
	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const recentTransactionsLimit = 20

type notesService struct {
	chain     chain.NotesClient
	names     chain.NameResolver
	notes     store.NoteRepository
	txs       store.TxRepository
	validator validators.Validator
	ids       utils.IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewNotesService wires the client use cases.
func NewNotesService(
	notesClient chain.NotesClient,
	names chain.NameResolver,
	notes store.NoteRepository,
	txs store.TxRepository,
	validator validators.Validator,
	ids utils.IDGenerator,
	logger *logger.Logger,
) NotesService {
	return &notesService{
		chain:     notesClient,
		names:     names,
		notes:     notes,
		txs:       txs,
		validator: validator,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *notesService) Submit(ctx context.Context, session wallet.Session, draft models.NoteDraft, onStage StageFunc) (models.TxRecord, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.TxRecord{}, err
	}
	if err := session.Require(); err != nil {
		return models.TxRecord{}, err
	}

	if draft.Private {
		notify(onStage, models.StageEncrypting)
	}
	content, err := codec.Encode(ctx, session, draft.Body, draft.Private)
	if err != nil {
		log.Err(err).Str("func", "notesService.Submit").Msg("failed to encode note")
		return models.TxRecord{}, err
	}

	notify(onStage, models.StageAwaitingSignature)
	auth, err := s.transactOpts(ctx, session)
	if err != nil {
		return models.TxRecord{}, err
	}

	hash, err := s.chain.AddNote(ctx, auth, content)
	if err != nil {
		log.Err(err).Str("func", "notesService.Submit").Msg("addNote failed")
		return models.TxRecord{}, err
	}

	record := s.journal(ctx, hash, models.TxKindAddNote, session.Account)
	log.Info().
		Str("func", "notesService.Submit").
		Str("tx", record.Hash).
		Bool("private", draft.Private).
		Int("body_len", len([]rune(draft.Body))).
		Msg("note submitted")

	notify(onStage, models.StageConfirming)
	if err = s.chain.WaitAdded(ctx, hash); err != nil {
		return s.settle(ctx, record, models.TxFailed, nil, err), err
	}

	return s.settle(ctx, record, models.TxConfirmed, nil, nil), nil
}

func (s *notesService) Reload(ctx context.Context, session wallet.Session, account common.Address) (models.ReloadResult, error) {
	log := logger.FromContext(ctx)

	result := models.ReloadResult{Account: account, FetchedAt: s.now()}

	notes, chainErr := s.chain.GetNotesByUser(ctx, account)
	if chainErr != nil {
		log.Err(chainErr).
			Str("func", "notesService.Reload").
			Str("account", account.Hex()).
			Msg("failed to fetch notes, falling back to cache")

		cached, err := s.notes.ListNotes(ctx, account)
		if err != nil {
			log.Err(err).Str("func", "notesService.Reload").Msg("failed to read cached notes")
			return result, errors.Join(chainErr, err)
		}

		cachedAt, err := s.notes.FetchedAt(ctx, account)
		if err != nil {
			log.Warn().Err(err).Str("func", "notesService.Reload").Msg("failed to read cache time")
		}

		result.Stale = true
		result.FetchedAt = cachedAt
		result.Views = newestFirst(codec.ResolveAll(ctx, session, cached))
		return result, chainErr
	}

	if err := s.notes.ReplaceNotes(ctx, account, notes); err != nil {
		log.Warn().Err(err).Str("func", "notesService.Reload").Msg("failed to cache notes")
	}

	result.Views = newestFirst(codec.ResolveAll(ctx, session, notes))
	return result, nil
}

func (s *notesService) Mint(ctx context.Context, session wallet.Session, note models.Note, onStage StageFunc) (models.TxRecord, error) {
	if !codec.IsMintEligible(note.Content) {
		return models.TxRecord{}, ErrNotMintEligible
	}
	if err := session.Require(); err != nil {
		return models.TxRecord{}, err
	}

	log := logger.FromContext(ctx)

	notify(onStage, models.StageAwaitingSignature)
	auth, err := s.transactOpts(ctx, session)
	if err != nil {
		return models.TxRecord{}, err
	}

	hash, err := s.chain.MintNote(ctx, auth, session.Account, note.Content, note.Timestamp)
	if err != nil {
		log.Err(err).Str("func", "notesService.Mint").Msg("mintNote failed")
		return models.TxRecord{}, err
	}

	record := s.journal(ctx, hash, models.TxKindMintNote, session.Account)

	notify(onStage, models.StageConfirming)
	tokenID, err := s.chain.WaitMinted(ctx, hash)
	if err != nil {
		return s.settle(ctx, record, models.TxFailed, nil, err), err
	}

	log.Info().
		Str("func", "notesService.Mint").
		Str("tx", record.Hash).
		Str("token_id", tokenID.String()).
		Msg("note minted")
	return s.settle(ctx, record, models.TxConfirmed, tokenID, nil), nil
}

func (s *notesService) DisplayName(ctx context.Context, account common.Address) string {
	return chain.DisplayName(ctx, s.names, account)
}

func (s *notesService) RecentTransactions(ctx context.Context, account common.Address) ([]models.TxRecord, error) {
	return s.txs.ListRecent(ctx, account.Hex(), recentTransactionsLimit)
}

func (s *notesService) ReconcilePending(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	pending, err := s.txs.ListPending(ctx)
	if err != nil {
		return 0, err
	}

	var (
		changed int
		errs    []error
	)
	for _, rec := range pending {
		status, tokenID, err := s.chain.TransactionStatus(ctx, common.HexToHash(rec.Hash))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if status == models.TxPending {
			continue
		}

		var reason string
		if status == models.TxFailed {
			reason = chain.ErrTxReverted.Error()
		}
		if err = s.txs.UpdateStatus(ctx, rec.Hash, status, tokenID, reason); err != nil {
			errs = append(errs, err)
			continue
		}
		changed++

		log.Info().
			Str("func", "notesService.ReconcilePending").
			Str("tx", rec.Hash).
			Str("status", string(status)).
			Msg("journal entry settled")
	}

	return changed, errors.Join(errs...)
}

func (s *notesService) transactOpts(ctx context.Context, session wallet.Session) (*bind.TransactOpts, error) {
	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	auth, err := session.TransactOpts(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	return auth, nil
}

// journal records a freshly sent transaction. A journal failure is logged
// and never undoes the submission.
func (s *notesService) journal(ctx context.Context, hash common.Hash, kind models.TxKind, account common.Address) models.TxRecord {
	now := s.now().UTC()
	record := models.TxRecord{
		ID:        s.ids.Generate(),
		Hash:      hash.Hex(),
		Kind:      kind,
		Account:   account.Hex(),
		Status:    models.TxPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.txs.Save(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("tx", record.Hash).Msg("failed to journal transaction")
	}
	return record
}

func (s *notesService) settle(ctx context.Context, record models.TxRecord, status models.TxStatus, tokenID *big.Int, cause error) models.TxRecord {
	record.Status = status
	record.TokenID = tokenID
	record.UpdatedAt = s.now().UTC()
	if cause != nil {
		record.Error = cause.Error()
	}

	if err := s.txs.UpdateStatus(ctx, record.Hash, status, tokenID, record.Error); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("tx", record.Hash).Msg("failed to update journal")
	}
	return record
}

func notify(onStage StageFunc, stage models.TxStage) {
	if onStage != nil {
		onStage(stage)
	}
}

// newestFirst reverses contract order, which is chronological.
func newestFirst(views []models.NoteView) []models.NoteView {
	slices.Reverse(views)
	return views
}
