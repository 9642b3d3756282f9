// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const keyFileVersion = 1

// KeyFile is the on-disk form of a sealed wallet key.
type KeyFile struct {
	Version int    `json:"version"`
	Address string `json:"address"`
	Salt    string `json:"salt"`
	Sealed  string `json:"sealed"`
}

// SaveKeyFile seals secret under passphrase and writes it to path with 0600
// permissions. address is stored in clear so the client can show which
// account the file unlocks before asking for the passphrase.
func SaveKeyFile(kc KeyChainService, path, address string, secret []byte, passphrase string) error {
	salt, err := kc.GenerateEncryptionSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	sealed, err := kc.SealKey(secret, kc.GenerateKEK(passphrase, salt))
	if err != nil {
		return fmt.Errorf("seal key: %w", err)
	}

	raw, err := json.MarshalIndent(KeyFile{
		Version: keyFileVersion,
		Address: address,
		Salt:    base64.StdEncoding.EncodeToString(salt),
		Sealed:  base64.StdEncoding.EncodeToString(sealed),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal key file: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}
	return os.WriteFile(path, raw, 0o600)
}

// ReadKeyFile parses the key file at path without opening it.
func ReadKeyFile(path string) (KeyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return KeyFile{}, err
	}

	var kf KeyFile
	if err = json.Unmarshal(raw, &kf); err != nil {
		return KeyFile{}, fmt.Errorf("parse key file: %w", err)
	}
	if kf.Version != keyFileVersion {
		return KeyFile{}, fmt.Errorf("unsupported key file version %d", kf.Version)
	}
	return kf, nil
}

// LoadKeyFile reads the key file at path and unseals the secret with
// passphrase.
func LoadKeyFile(kc KeyChainService, path, passphrase string) ([]byte, KeyFile, error) {
	kf, err := ReadKeyFile(path)
	if err != nil {
		return nil, KeyFile{}, err
	}

	salt, err := base64.StdEncoding.DecodeString(kf.Salt)
	if err != nil {
		return nil, KeyFile{}, fmt.Errorf("decode salt: %w", err)
	}
	sealed, err := base64.StdEncoding.DecodeString(kf.Sealed)
	if err != nil {
		return nil, KeyFile{}, fmt.Errorf("decode sealed key: %w", err)
	}

	secret, err := kc.OpenKey(sealed, kc.GenerateKEK(passphrase, salt))
	if err != nil {
		return nil, KeyFile{}, err
	}
	return secret, kf, nil
}

// KeyFileExists reports whether a key file is present at path.
func KeyFileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
