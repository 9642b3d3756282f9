// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/big"
	"time"
)

// TxKind names the contract write a journal entry tracks.
type TxKind string

const (
	TxKindAddNote  TxKind = "add_note"
	TxKindMintNote TxKind = "mint_note"
)

// TxStatus is the lifecycle state of a submitted transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// TxRecord is one row of the local transaction journal. It never contains
// the plaintext of a private note.
type TxRecord struct {
	ID      string
	Hash    string
	Kind    TxKind
	Account string
	Status  TxStatus

	// TokenID is set for confirmed mints.
	TokenID *big.Int

	// Error holds the failure reason for TxFailed entries.
	Error string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TxStage is a step of a contract write as shown to the user.
type TxStage int

const (
	// StageEncrypting: the wallet is asked for its encryption key.
	StageEncrypting TxStage = iota + 1
	// StageAwaitingSignature: the wallet is asked to sign.
	StageAwaitingSignature
	// StageConfirming: the transaction was sent and is waiting to be mined.
	StageConfirming
)

func (s TxStage) String() string {
	switch s {
	case StageEncrypting:
		return "Requesting encryption key…"
	case StageAwaitingSignature:
		return "Awaiting signature…"
	case StageConfirming:
		return "Confirming transaction…"
	default:
		return ""
	}
}
