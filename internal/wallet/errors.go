package wallet

import "errors"

var (
	// ErrWalletNotConnected is returned before any provider call when the
	// session has no account or no provider.
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrUserRejected maps EIP-1193 code 4001: the user declined the prompt.
	ErrUserRejected = errors.New("user rejected the request")

	// ErrUnauthorizedAccount maps EIP-1193 code 4100: the account is not
	// available to the caller.
	ErrUnauthorizedAccount = errors.New("account not authorized")

	// ErrUnsupportedMethod maps EIP-1193 code 4200 and JSON-RPC -32601.
	ErrUnsupportedMethod = errors.New("wallet method not supported")

	// ErrProviderFailed covers every other provider failure, including
	// transport errors.
	ErrProviderFailed = errors.New("wallet provider failed")

	// ErrNoAccounts is returned by Connect when the wallet exposes none.
	ErrNoAccounts = errors.New("wallet has no accounts")

	// ErrSigningUnavailable is returned when the provider cannot sign
	// transactions.
	ErrSigningUnavailable = errors.New("wallet cannot sign transactions")
)
