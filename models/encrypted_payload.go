// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptionVersionX25519 is the only payload version wallets implementing
// eth_decrypt understand.
const EncryptionVersionX25519 = "x25519-xsalsa20-poly1305"

// EncryptedPayload is the ciphertext structure of a private note. All binary
// fields are standard base64. The poly1305 authenticator is carried at the
// head of Ciphertext, as produced by NaCl box.
type EncryptedPayload struct {
	// Version names the scheme, see [EncryptionVersionX25519].
	Version string `json:"version"`

	// Nonce is the 24-byte box nonce.
	Nonce string `json:"nonce"`

	// EphemPublicKey is the sender's one-shot x25519 public key.
	EphemPublicKey string `json:"ephemPublicKey"`

	// Ciphertext is MAC ‖ encrypted body.
	Ciphertext string `json:"ciphertext"`
}
