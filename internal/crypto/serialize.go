// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/ether-notes/models"
)

const hexPrefix = "0x"

// SerializePayload renders p as "0x" + hex(JSON(p)), the exact string
// eth_decrypt accepts as its first parameter.
func SerializePayload(p models.EncryptedPayload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return hexPrefix + hex.EncodeToString(raw), nil
}

// DeserializePayload is the inverse of [SerializePayload]. Every field must
// be present and no unknown fields are accepted.
func DeserializePayload(s string) (models.EncryptedPayload, error) {
	if !strings.HasPrefix(s, hexPrefix) {
		return models.EncryptedPayload{}, fmt.Errorf("%w: missing 0x prefix", ErrMalformedPayload)
	}

	raw, err := hex.DecodeString(s[len(hexPrefix):])
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var p models.EncryptedPayload
	if err = dec.Decode(&p); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return models.EncryptedPayload{}, fmt.Errorf("%w: trailing data", ErrMalformedPayload)
	}

	if p.Version == "" || p.Nonce == "" || p.EphemPublicKey == "" || p.Ciphertext == "" {
		return models.EncryptedPayload{}, fmt.Errorf("%w: missing field", ErrMalformedPayload)
	}

	return p, nil
}
