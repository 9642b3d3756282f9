// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/ether-notes/models"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

const (
	keySize   = 32
	nonceSize = 24
)

// EncryptionPublicKey returns the base64 x25519 public key for secret. This
// is the value a wallet answers to eth_getEncryptionPublicKey when secret is
// the account's private key.
func EncryptionPublicKey(secret [keySize]byte) (string, error) {
	pub, err := curve25519.X25519(secret[:], curve25519.Basepoint)
	if err != nil {
		return "", fmt.Errorf("derive public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(pub), nil
}

// Encrypt seals plaintext for the holder of publicKey using a fresh
// ephemeral key pair and nonce, so two calls never produce the same payload.
func Encrypt(publicKey string, plaintext string) (models.EncryptedPayload, error) {
	peer, err := decodeKey(publicKey)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	ephemPub, ephemPriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate ephemeral key: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err = io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := box.Seal(nil, []byte(plaintext), &nonce, &peer, ephemPriv)

	return models.EncryptedPayload{
		Version:        models.EncryptionVersionX25519,
		Nonce:          base64.StdEncoding.EncodeToString(nonce[:]),
		EphemPublicKey: base64.StdEncoding.EncodeToString(ephemPub[:]),
		Ciphertext:     base64.StdEncoding.EncodeToString(sealed),
	}, nil
}

// Decrypt opens payload with the recipient's secret key.
func Decrypt(payload models.EncryptedPayload, secret [keySize]byte) (string, error) {
	if payload.Version != models.EncryptionVersionX25519 {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, payload.Version)
	}

	nonceRaw, err := base64.StdEncoding.DecodeString(payload.Nonce)
	if err != nil || len(nonceRaw) != nonceSize {
		return "", fmt.Errorf("%w: bad nonce", ErrMalformedPayload)
	}
	ephem, err := decodeKey(payload.EphemPublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: bad ephemeral key", ErrMalformedPayload)
	}
	sealed, err := base64.StdEncoding.DecodeString(payload.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext", ErrMalformedPayload)
	}
	if len(sealed) < box.Overhead {
		return "", ErrCiphertextTooShort
	}

	var nonce [nonceSize]byte
	copy(nonce[:], nonceRaw)

	opened, ok := box.Open(nil, sealed, &nonce, &ephem, &secret)
	if !ok {
		return "", ErrDecrypt
	}
	return string(opened), nil
}

func decodeKey(encoded string) ([keySize]byte, error) {
	var key [keySize]byte

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return key, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(raw) != keySize {
		return key, fmt.Errorf("%w: got %d bytes", ErrInvalidPublicKey, len(raw))
	}

	copy(key[:], raw)
	return key, nil
}
