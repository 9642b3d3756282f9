// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Note is a single entry returned by the notes contract. Content is the
// string exactly as it is stored on-chain: either the plaintext body or an
// encoded encrypted payload.
type Note struct {
	// Author is the account that called addNote.
	Author common.Address `json:"author"`

	// Content is the raw on-chain payload.
	Content string `json:"content"`

	// Timestamp is the block time (seconds since epoch) assigned by the
	// contract at write time.
	Timestamp uint64 `json:"timestamp"`
}

// Time returns Timestamp as a UTC time value.
func (n Note) Time() time.Time {
	return time.Unix(int64(n.Timestamp), 0).UTC()
}

// NoteDraft is what the composer hands to the service layer before encoding.
type NoteDraft struct {
	// Body is the plaintext typed by the user. The length limit applies to
	// this value, never to the encoded result.
	Body string `validate:"nonblank,max=200,nomarker"`

	// Private requests wallet-keyed encryption of Body.
	Private bool
}
