// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidPublicKey is returned when a recipient key is not a base64
	// encoded 32-byte x25519 public key.
	ErrInvalidPublicKey = errors.New("invalid encryption public key")

	// ErrUnsupportedVersion is returned for payloads whose version is not
	// x25519-xsalsa20-poly1305.
	ErrUnsupportedVersion = errors.New("unsupported encryption version")

	// ErrMalformedPayload is returned when a serialized payload cannot be
	// parsed back into its ciphertext structure.
	ErrMalformedPayload = errors.New("malformed encrypted payload")

	// ErrDecrypt is returned when box authentication fails: wrong key or
	// tampered ciphertext.
	ErrDecrypt = errors.New("decryption failed")

	// ErrCiphertextTooShort is returned when a sealed blob is shorter than
	// its nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrWrongPassphrase is returned when a key file cannot be opened with
	// the supplied passphrase.
	ErrWrongPassphrase = errors.New("wrong keystore passphrase")
)
