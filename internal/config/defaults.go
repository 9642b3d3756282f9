package config

import "time"

const (
	defaultExportDir         = "notes-export"
	defaultRequestsPerSecond = 5
	defaultReceiptTimeout    = 2 * time.Minute
	defaultKeystorePath      = "ether-notes-key.json"
	defaultWalletTimeout     = 2 * time.Minute
	defaultNameTTL           = time.Hour
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultRefreshInterval   = time.Minute
	defaultReceiptPoll       = 5 * time.Second

	// DefaultClientDSN is used by the client when no database is configured.
	DefaultClientDSN = "file:ether-notes.db?_foreign_keys=on"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ExportDir: defaultExportDir,
		},
		Chain: Chain{
			RequestsPerSecond: defaultRequestsPerSecond,
			ReceiptTimeout:    defaultReceiptTimeout,
		},
		Wallet: Wallet{
			Mode:           WalletModeLocal,
			KeystorePath:   defaultKeystorePath,
			RequestTimeout: defaultWalletTimeout,
		},
		Storage: Storage{
			Redis: Redis{NameTTL: defaultNameTTL},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			RefreshInterval:     defaultRefreshInterval,
			ReceiptPollInterval: defaultReceiptPoll,
		},
	}
}
