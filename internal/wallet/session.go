package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Session is the explicit wallet context: the connected account and the
// provider that speaks for it. The zero value is a disconnected session.
type Session struct {
	Account  common.Address
	Provider Provider
}

// NewSession binds account to provider.
func NewSession(account common.Address, provider Provider) Session {
	return Session{Account: account, Provider: provider}
}

// Connect asks provider for its accounts and opens a session for preferred,
// or for the first account when preferred is the zero address.
func Connect(ctx context.Context, provider Provider, preferred common.Address) (Session, error) {
	if provider == nil {
		return Session{}, ErrWalletNotConnected
	}

	accounts, err := provider.Accounts(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return Session{}, ErrNoAccounts
	}

	if preferred == (common.Address{}) {
		return NewSession(accounts[0], provider), nil
	}
	for _, a := range accounts {
		if a == preferred {
			return NewSession(a, provider), nil
		}
	}
	return Session{}, fmt.Errorf("%w: %s", ErrUnauthorizedAccount, preferred.Hex())
}

// Connected reports whether the session has both an account and a provider.
func (s Session) Connected() bool {
	return s.Provider != nil && s.Account != (common.Address{})
}

// Require returns ErrWalletNotConnected when the session is not connected.
// It never calls the provider.
func (s Session) Require() error {
	if !s.Connected() {
		return ErrWalletNotConnected
	}
	return nil
}

// IsAuthor reports whether author is the connected account. A disconnected
// session is never the author.
func (s Session) IsAuthor(author common.Address) bool {
	return s.Connected() && author == s.Account
}

// TransactOpts returns signing options for the connected account.
func (s Session) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	if err := s.Require(); err != nil {
		return nil, err
	}

	signer, ok := s.Provider.(Signer)
	if !ok {
		return nil, ErrSigningUnavailable
	}
	return signer.TransactOpts(ctx, s.Account, chainID)
}
