// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the use cases of the client and the gateway. It
// glues the note codec, the chain client, the wallet session and the local
// repositories together.
package service

import (
	"context"

	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// StageFunc observes the progress of a contract write. It may be nil.
type StageFunc func(models.TxStage)

// NotesService is the client-side use case surface.
type NotesService interface {
	// Submit validates draft, encodes it (encrypting private drafts) and
	// writes it with addNote. Encoding always completes before the write.
	Submit(ctx context.Context, session wallet.Session, draft models.NoteDraft, onStage StageFunc) (models.TxRecord, error)

	// Reload fetches the notes of account and resolves them for session,
	// newest first. When the chain is unreachable the cached raw notes are
	// resolved instead, the result is marked Stale and the chain error is
	// returned alongside it.
	Reload(ctx context.Context, session wallet.Session, account common.Address) (models.ReloadResult, error)

	// Mint turns a plaintext note into an NFT owned by the connected account.
	Mint(ctx context.Context, session wallet.Session, note models.Note, onStage StageFunc) (models.TxRecord, error)

	// DisplayName returns the ENS name of account or its short form.
	DisplayName(ctx context.Context, account common.Address) string

	// RecentTransactions lists the journal of account, newest first.
	RecentTransactions(ctx context.Context, account common.Address) ([]models.TxRecord, error)

	// ReconcilePending settles journal entries left pending by earlier
	// sessions and returns how many changed.
	ReconcilePending(ctx context.Context) (int, error)
}

// GatewayService serves notes to anonymous readers. It never holds wallet
// keys, so encrypted notes are always returned locked.
type GatewayService interface {
	NotesFor(ctx context.Context, author common.Address) (models.NotesResponse, error)
	Track(ctx context.Context, author common.Address) error
	RefreshAll(ctx context.Context) (models.RefreshStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
