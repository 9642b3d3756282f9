// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// NoteView is everything a UI needs to render one note card for the
// currently connected viewer.
type NoteView struct {
	Note    Note
	Decoded DecodedNote

	// IsAuthor is true when the connected account wrote the note.
	IsAuthor bool

	// MintEligible is derived from the raw content only.
	MintEligible bool

	// Err is the per-note decode failure, if any. It never affects sibling
	// views.
	Err error
}

// ReloadResult is the outcome of an explicit "reload notes for account"
// operation.
type ReloadResult struct {
	Account common.Address
	Views   []NoteView

	// Stale is set when the chain could not be reached and Views were
	// rebuilt from the local cache of raw notes.
	Stale bool

	FetchedAt time.Time
}
