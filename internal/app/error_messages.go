// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the terminal client
// and the gateway.
//
// Msg* constants are short strings shown in toasts, HTTP error bodies or log
// entries. Keeping them in one place keeps the wording consistent between
// the terminal and the API.
package app

import (
	"errors"

	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/codec"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/validators"
	"github.com/MKhiriev/ether-notes/internal/wallet"
)

const (
	// MsgEmptyNote is the toast title for a blank draft.
	MsgEmptyNote = "Empty Note"
	// MsgEmptyNoteHint tells the user what to do about a blank draft.
	MsgEmptyNoteHint = "Please write something before saving."

	MsgNoteSaved     = "Note Saved!"
	MsgNoteSavedHint = "Your note has been successfully stored on-chain."

	MsgNoteMinted = "Note Minted!"

	// MsgTransactionError is the generic toast title for a failed write.
	MsgTransactionError = "Transaction Error"

	MsgErrorFetchingNotes = "Error Fetching Notes"
	// MsgErrorFetchingNotesHint mirrors the most common cause of a failed
	// read: the contract address points at nothing on this network.
	MsgErrorFetchingNotesHint = "Could not fetch your notes. The contract may not be deployed on the connected network."

	MsgNoNotesYet     = "No Notes Yet"
	MsgNoNotesYetHint = "Once you save a note, it will appear here."

	MsgNoteTooLong           = "Notes are limited to 200 characters."
	MsgMarkerInPublicNote    = "Public notes cannot start with the encrypted marker."
	MsgEncryptionUnavailable = "The wallet did not provide an encryption key."
	MsgDecryptionFailed      = "This note could not be decrypted."
	MsgWalletNotConnected    = "Connect a wallet first."
	MsgUserRejected          = "The request was rejected in the wallet."
	MsgChainCallFailed       = "The network could not be reached."
	MsgTxReverted            = "The transaction was reverted."
	MsgMintDisabled          = "Minting is not configured for this network."
	MsgNotMintEligible       = "Only public notes can be minted."

	// MsgInternalServerError is returned by the gateway for failures the
	// caller cannot resolve.
	MsgInternalServerError = "internal server error"
)

// Toast is a title and a one-line description shown after an action.
type Toast struct {
	Title       string
	Description string
}

var descriptions = []struct {
	target error
	toast  Toast
}{
	{validators.ErrEmptyNote, Toast{MsgEmptyNote, MsgEmptyNoteHint}},
	{validators.ErrNoteTooLong, Toast{MsgTransactionError, MsgNoteTooLong}},
	{validators.ErrMarkerInPublicNote, Toast{MsgTransactionError, MsgMarkerInPublicNote}},
	{wallet.ErrWalletNotConnected, Toast{MsgTransactionError, MsgWalletNotConnected}},
	{wallet.ErrUserRejected, Toast{MsgTransactionError, MsgUserRejected}},
	{codec.ErrEncryptionUnavailable, Toast{MsgTransactionError, MsgEncryptionUnavailable}},
	{codec.ErrDecryptionFailed, Toast{MsgTransactionError, MsgDecryptionFailed}},
	{service.ErrNotMintEligible, Toast{MsgTransactionError, MsgNotMintEligible}},
	{chain.ErrMintDisabled, Toast{MsgTransactionError, MsgMintDisabled}},
	{chain.ErrTxReverted, Toast{MsgTransactionError, MsgTxReverted}},
	{chain.ErrChainCallFailed, Toast{MsgTransactionError, MsgChainCallFailed}},
}

// Describe maps err to the toast shown for it. The first matching entry
// wins, so wrapped wallet errors inside codec errors resolve to the wallet
// wording. Unknown errors keep their own message.
func Describe(err error) Toast {
	if err == nil {
		return Toast{}
	}
	for _, d := range descriptions {
		if errors.Is(err, d.target) {
			return d.toast
		}
	}
	return Toast{Title: MsgTransactionError, Description: err.Error()}
}
