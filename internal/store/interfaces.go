// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"math/big"
	"time"

	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository caches raw on-chain notes per author. Only the content
// string as stored on-chain is kept; decrypted bodies never reach the
// database.
type NoteRepository interface {
	// TrackAuthor registers author without touching its notes.
	TrackAuthor(ctx context.Context, author common.Address) error

	// ReplaceNotes swaps the cached notes of author for notes in one
	// transaction. Contract order is kept in the position column.
	ReplaceNotes(ctx context.Context, author common.Address, notes []models.Note) error

	// ListNotes returns the cached notes of author in contract order.
	ListNotes(ctx context.Context, author common.Address) ([]models.Note, error)

	// ListAuthors returns every tracked author.
	ListAuthors(ctx context.Context) ([]common.Address, error)

	// FetchedAt returns when the notes of author were last cached. The zero
	// time means they never were.
	FetchedAt(ctx context.Context, author common.Address) (time.Time, error)
}

// TxRepository is the local journal of submitted transactions.
type TxRepository interface {
	Save(ctx context.Context, record models.TxRecord) error

	// UpdateStatus moves the entry with hash to status. tokenID and reason
	// may be empty.
	UpdateStatus(ctx context.Context, hash string, status models.TxStatus, tokenID *big.Int, reason string) error

	// ListPending returns pending entries, oldest first.
	ListPending(ctx context.Context) ([]models.TxRecord, error)

	// ListRecent returns the newest entries of account.
	ListRecent(ctx context.Context, account string, limit uint64) ([]models.TxRecord, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
