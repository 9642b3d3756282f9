// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/MKhiriev/ether-notes/internal/crypto"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// ApprovalRequest describes a prompt shown before the local wallet answers.
type ApprovalRequest struct {
	Method  string
	Account common.Address
}

// Approver decides whether the user allows a request. Returning false makes
// the provider fail with ErrUserRejected.
type Approver func(ctx context.Context, req ApprovalRequest) bool

// AutoApprove allows every request.
func AutoApprove(context.Context, ApprovalRequest) bool { return true }

// LocalProvider is a single-account wallet holding its secp256k1 key in
// memory. The x25519 encryption key is derived from the same 32 secret bytes,
// so payloads it produces and opens are interchangeable with MetaMask's.
type LocalProvider struct {
	key     *ecdsa.PrivateKey
	account common.Address
	secret  [32]byte
	approve Approver
}

// NewLocalProvider wraps key. A nil approve is treated as AutoApprove.
func NewLocalProvider(key *ecdsa.PrivateKey, approve Approver) *LocalProvider {
	if approve == nil {
		approve = AutoApprove
	}

	p := &LocalProvider{
		key:     key,
		account: ethcrypto.PubkeyToAddress(key.PublicKey),
		approve: approve,
	}
	copy(p.secret[:], ethcrypto.FromECDSA(key))
	return p
}

// OpenLocalProvider unseals the key file at path. When no file exists a new
// key is generated and sealed under passphrase first.
func OpenLocalProvider(kc crypto.KeyChainService, path, passphrase string, approve Approver) (*LocalProvider, error) {
	if !crypto.KeyFileExists(path) {
		key, err := ethcrypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		address := ethcrypto.PubkeyToAddress(key.PublicKey)
		if err = crypto.SaveKeyFile(kc, path, address.Hex(), ethcrypto.FromECDSA(key), passphrase); err != nil {
			return nil, fmt.Errorf("save key file: %w", err)
		}
		return NewLocalProvider(key, approve), nil
	}

	secret, _, err := crypto.LoadKeyFile(kc, path, passphrase)
	if err != nil {
		return nil, fmt.Errorf("load key file: %w", err)
	}

	key, err := ethcrypto.ToECDSA(secret)
	if err != nil {
		return nil, fmt.Errorf("parse key: %w", err)
	}
	return NewLocalProvider(key, approve), nil
}

// Address returns the provider's only account.
func (p *LocalProvider) Address() common.Address {
	return p.account
}

func (p *LocalProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []common.Address{p.account}, nil
}

func (p *LocalProvider) EncryptionPublicKey(ctx context.Context, account common.Address) (string, error) {
	if err := p.authorize(ctx, "eth_getEncryptionPublicKey", account); err != nil {
		return "", err
	}

	pub, err := crypto.EncryptionPublicKey(p.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	return pub, nil
}

func (p *LocalProvider) Decrypt(ctx context.Context, serialized string, account common.Address) (string, error) {
	if err := p.authorize(ctx, "eth_decrypt", account); err != nil {
		return "", err
	}

	payload, err := crypto.DeserializePayload(serialized)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}

	plaintext, err := crypto.Decrypt(payload, p.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}
	return plaintext, nil
}

// TransactOpts implements [Signer] with a keyed transactor.
func (p *LocalProvider) TransactOpts(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if err := p.authorize(ctx, "eth_sendTransaction", account); err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(p.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	opts.Context = ctx
	return opts, nil
}

func (p *LocalProvider) authorize(ctx context.Context, method string, account common.Address) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if account != p.account {
		return fmt.Errorf("%w: %s", ErrUnauthorizedAccount, account.Hex())
	}
	if !p.approve(ctx, ApprovalRequest{Method: method, Account: account}) {
		return ErrUserRejected
	}
	return nil
}
