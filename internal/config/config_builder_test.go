package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.NotNil(t, b.lookupFlags)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one, while zero fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Chain: Chain{RPCURL: "http://env"}},
		&StructuredConfig{Chain: Chain{RPCURL: "http://flag", ChainID: 11155111}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.Chain.RPCURL)
	assert.Equal(t, int64(11155111), cfg.Chain.ChainID)
}

func TestBuild_RejectsUnknownWalletMode(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Wallet: Wallet{Mode: "ledger"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWalletConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyUnset(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: "0.0.0.0:9000"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, WalletModeLocal, cfg.Wallet.Mode)
	assert.Equal(t, float64(defaultRequestsPerSecond), cfg.Chain.RequestsPerSecond)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_UsesLookup(t *testing.T) {
	b := newConfigBuilder()
	b.lookupFlags = func() *StructuredConfig {
		return &StructuredConfig{Chain: Chain{NotesAddress: "0x1"}}
	}

	b.withFlags()
	require.Len(t, b.configs, 1)
	assert.Equal(t, "0x1", b.configs[0].Chain.NotesAddress)
}

func TestWithJSON_LoadsPathFromEarlierSource(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"chain":{"receipt_timeout":"90s"}}`), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Chain.ReceiptTimeout)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "none.json")})

	_, err := b.withJSON().build()
	require.Error(t, err)
}
