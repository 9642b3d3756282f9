package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNotesAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func validStructured() *StructuredConfig {
	cfg := defaults()
	cfg.Chain.RPCURL = "http://localhost:8545"
	cfg.Chain.NotesAddress = testNotesAddress
	cfg.Storage.DB.DSN = "postgres://localhost/notes"
	return cfg
}

func TestNewClientConfig_DefaultDSN(t *testing.T) {
	cfg := validStructured()
	cfg.Storage.DB.DSN = ""

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultClientDSN, clientCfg.DB.DSN)
	assert.Equal(t, defaultReceiptPoll, clientCfg.Workers.ReceiptPollInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "no rpc", mutate: func(c *StructuredConfig) { c.Chain.RPCURL = "" }, wantErr: ErrInvalidChainConfigs},
		{name: "bad notes address", mutate: func(c *StructuredConfig) { c.Chain.NotesAddress = "0x12" }, wantErr: ErrInvalidChainConfigs},
		{name: "bad nft address", mutate: func(c *StructuredConfig) { c.Chain.NFTAddress = "nft" }, wantErr: ErrInvalidChainConfigs},
		{name: "zero rate", mutate: func(c *StructuredConfig) { c.Chain.RequestsPerSecond = 0 }, wantErr: ErrInvalidChainConfigs},
		{name: "local without keystore", mutate: func(c *StructuredConfig) { c.Wallet.KeystorePath = "" }, wantErr: ErrInvalidWalletConfigs},
		{name: "rpc without url", mutate: func(c *StructuredConfig) { c.Wallet.Mode = WalletModeRPC }, wantErr: ErrInvalidWalletConfigs},
		{name: "bad account", mutate: func(c *StructuredConfig) { c.Wallet.Account = "alice" }, wantErr: ErrInvalidWalletConfigs},
		{name: "memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero poll", mutate: func(c *StructuredConfig) { c.Workers.ReceiptPollInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructured()
			tt.mutate(cfg)

			_, err := newClientConfig(cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGatewayConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {
			c.Workers.TrackedAuthors = []string{"0x00000000000000000000000000000000000000aa"}
		}},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero refresh", mutate: func(c *StructuredConfig) { c.Workers.RefreshInterval = -time.Second }, wantErr: ErrInvalidWorkerConfigs},
		{name: "bad author", mutate: func(c *StructuredConfig) { c.Workers.TrackedAuthors = []string{"bob"} }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructured()
			tt.mutate(cfg)

			_, err := newGatewayConfig(cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
