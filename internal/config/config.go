// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// ether-notes client and gateway. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application version and client-side file locations.
	App App `envPrefix:"APP_"`

	// Chain holds RPC endpoints and contract addresses.
	Chain Chain `envPrefix:"CHAIN_"`

	// Wallet selects and configures the wallet provider used by the client.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Storage holds the relational database and Redis settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the gateway listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds intervals for the background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the client log destination; the TUI owns the terminal.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// ExportDir is where the client writes markdown exports.
	// Env: APP_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Chain holds everything needed to talk to the notes and NFT contracts.
type Chain struct {
	// RPCURL is the JSON-RPC endpoint of the network hosting the contracts.
	// Env: CHAIN_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// ChainID is used for EIP-155 signing. Zero means ask the node.
	// Env: CHAIN_ID
	ChainID int64 `env:"ID"`

	// NotesAddress is the notes contract address.
	// Env: CHAIN_NOTES_ADDRESS
	NotesAddress string `env:"NOTES_ADDRESS"`

	// NFTAddress is the note NFT contract address. Empty disables minting.
	// Env: CHAIN_NFT_ADDRESS
	NFTAddress string `env:"NFT_ADDRESS"`

	// ENSRPCURL points at a mainnet node for reverse name lookups. Empty
	// disables ENS and display names fall back to short addresses.
	// Env: CHAIN_ENS_RPC_URL
	ENSRPCURL string `env:"ENS_RPC_URL"`

	// RequestsPerSecond throttles outbound RPC calls.
	// Env: CHAIN_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`

	// ReceiptTimeout bounds how long a submission waits to be mined.
	// Env: CHAIN_RECEIPT_TIMEOUT
	ReceiptTimeout time.Duration `env:"RECEIPT_TIMEOUT"`
}

// Wallet modes.
const (
	WalletModeLocal = "local"
	WalletModeRPC   = "rpc"
)

// Wallet configures the client's wallet provider.
type Wallet struct {
	// Mode is "local" (passphrase-protected key file) or "rpc" (external
	// wallet speaking JSON-RPC).
	// Env: WALLET_MODE
	Mode string `env:"MODE"`

	// KeystorePath is the sealed key file used in local mode.
	// Env: WALLET_KEYSTORE_PATH
	KeystorePath string `env:"KEYSTORE_PATH"`

	// Passphrase unlocks the key file. When empty the client prompts.
	// Env: WALLET_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// RPCURL is the external wallet endpoint used in rpc mode.
	// Env: WALLET_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// Account selects one of the wallet's accounts. Empty picks the first.
	// Env: WALLET_ACCOUNT
	Account string `env:"ACCOUNT"`

	// RequestTimeout bounds a single wallet request, including the time the
	// user spends on the approval prompt.
	// Env: WALLET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database. The client uses
// SQLite, the gateway PostgreSQL.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis configures the gateway display-name cache. Empty Address disables it.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// Env: STORAGE_REDIS_NAME_TTL
	NameTTL time.Duration `env:"NAME_TTL"`
}

// Server holds network and timeout settings for the gateway.
type Server struct {
	// HTTPAddress is the "host:port" the gateway listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the gateway re-indexes tracked authors.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// ReceiptPollInterval is how often the client checks pending
	// transactions from earlier sessions.
	// Env: WORKERS_RECEIPT_POLL_INTERVAL
	ReceiptPollInterval time.Duration `env:"RECEIPT_POLL_INTERVAL"`

	// TrackedAuthors are indexed by the gateway from startup.
	// Env: WORKERS_TRACKED_AUTHORS (comma separated)
	TrackedAuthors []string `env:"TRACKED_AUTHORS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. For every field the first source that sets it wins:
//  1. Environment variables (after loading .env.local and .env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
