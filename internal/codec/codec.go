// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec maps a note's on-chain content string to a logical note and
// back.
//
// Public notes are stored verbatim. Private notes are encrypted to the
// author's wallet key, serialized as "0x" + hex(JSON payload) and prefixed
// with [MarkerPrefix]:
//
//	encrypted::0x7b2276657273696f6e223a...
//
// Decoding never caches plaintext and never asks the wallet on behalf of a
// viewer who is not the author.
package codec

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ether-notes/internal/crypto"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
)

const (
	// MarkerPrefix tags content that holds an encrypted payload.
	MarkerPrefix = "encrypted::"

	// MaxPlaintextLength is the composer limit in characters, applied to the
	// plaintext before encoding.
	MaxPlaintextLength = 200
)

// IsEncrypted reports whether raw carries the encrypted marker.
func IsEncrypted(raw string) bool {
	return strings.HasPrefix(raw, MarkerPrefix)
}

// IsMintEligible reports whether a note may be minted. Only plaintext notes
// qualify, and the check looks at raw content alone.
func IsMintEligible(raw string) bool {
	return !IsEncrypted(raw)
}

// Encode prepares plaintext for addNote. For private notes the public key
// is requested from the session's wallet on every call.
func Encode(ctx context.Context, session wallet.Session, plaintext string, makePrivate bool) (string, error) {
	if !makePrivate {
		return plaintext, nil
	}

	if err := session.Require(); err != nil {
		return "", err
	}

	publicKey, err := session.Provider.EncryptionPublicKey(ctx, session.Account)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionUnavailable, err)
	}

	return EncodeWithKey(plaintext, makePrivate, publicKey)
}

// EncodeWithKey is Encode with the recipient key supplied by the caller.
func EncodeWithKey(plaintext string, makePrivate bool, publicKey string) (string, error) {
	if !makePrivate {
		return plaintext, nil
	}

	if publicKey == "" {
		return "", fmt.Errorf("%w: no public key", ErrEncryptionUnavailable)
	}

	payload, err := crypto.Encrypt(publicKey, plaintext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionUnavailable, err)
	}

	serialized, err := crypto.SerializePayload(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionUnavailable, err)
	}

	return MarkerPrefix + serialized, nil
}

// Decode turns raw into a [models.DecodedNote] for the current viewer.
//
// Plain content is always Public. Encrypted content is PrivateLocked for
// anyone but the author, without touching the wallet. For the author the
// payload is validated locally and then opened by the wallet; any failure
// yields PrivateLocked together with ErrDecryptionFailed.
func Decode(ctx context.Context, session wallet.Session, raw string, viewerIsAuthor bool) (models.DecodedNote, error) {
	if !IsEncrypted(raw) {
		return models.PublicNote(raw), nil
	}

	if !viewerIsAuthor {
		return models.LockedNote(), nil
	}

	if err := session.Require(); err != nil {
		return models.LockedNote(), fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	serialized := strings.TrimPrefix(raw, MarkerPrefix)
	if _, err := crypto.DeserializePayload(serialized); err != nil {
		return models.LockedNote(), fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	plaintext, err := session.Provider.Decrypt(ctx, serialized, session.Account)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int("content_len", len(raw)).Msg("decrypt refused")
		return models.LockedNote(), fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return models.UnlockedNote(plaintext), nil
}
