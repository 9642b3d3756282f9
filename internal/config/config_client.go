package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	App     App
	Chain   Chain
	Wallet  Wallet
	DB      DB
	Workers ClientWorkers
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ReceiptPollInterval defines how often pending transactions are checked.
	ReceiptPollInterval time.Duration
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration. An empty DSN falls back to [DefaultClientDSN].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Chain:   cfg.Chain,
		Wallet:  cfg.Wallet,
		DB:      DB{DSN: dsn},
		Workers: ClientWorkers{ReceiptPollInterval: cfg.Workers.ReceiptPollInterval},
	}

	return clientCfg, clientCfg.validate()
}
