package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidChainConfigs indicates a missing RPC URL or a malformed
	// contract address.
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidWalletConfigs indicates an unknown wallet mode or a mode
	// without its required endpoint or key file path.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing gateway address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval or a malformed tracked author).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
