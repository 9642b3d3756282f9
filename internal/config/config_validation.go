// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// validate checks the merged [StructuredConfig]. Only cross-cutting rules
// live here; each view validates what it actually uses.
func (cfg *StructuredConfig) validate() error {
	if cfg.Wallet.Mode != "" && cfg.Wallet.Mode != WalletModeLocal && cfg.Wallet.Mode != WalletModeRPC {
		return ErrInvalidWalletConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateChain(cfg.Chain); err != nil {
		return err
	}

	switch cfg.Wallet.Mode {
	case WalletModeLocal:
		if cfg.Wallet.KeystorePath == "" {
			return ErrInvalidWalletConfigs
		}
	case WalletModeRPC:
		if cfg.Wallet.RPCURL == "" {
			return ErrInvalidWalletConfigs
		}
	default:
		return ErrInvalidWalletConfigs
	}
	if cfg.Wallet.Account != "" && !common.IsHexAddress(cfg.Wallet.Account) {
		return ErrInvalidWalletConfigs
	}

	if cfg.DB.DSN == "" || strings.Contains(cfg.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ReceiptPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *GatewayConfig) validate() error {
	if err := validateChain(cfg.Chain); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	for _, a := range cfg.Workers.TrackedAuthors {
		if !common.IsHexAddress(a) {
			return ErrInvalidWorkerConfigs
		}
	}

	return nil
}

func validateChain(c Chain) error {
	if c.RPCURL == "" || !common.IsHexAddress(c.NotesAddress) {
		return ErrInvalidChainConfigs
	}
	if c.NFTAddress != "" && !common.IsHexAddress(c.NFTAddress) {
		return ErrInvalidChainConfigs
	}
	if c.RequestsPerSecond <= 0 || c.ReceiptTimeout <= 0 {
		return ErrInvalidChainConfigs
	}
	return nil
}
