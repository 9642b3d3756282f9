package config

import (
	"fmt"
	"time"
)

// GatewayConfig is the configuration view used by the notes gateway.
type GatewayConfig struct {
	App     App
	Chain   Chain
	Storage Storage
	Server  Server
	Workers GatewayWorkers
}

// GatewayWorkers contains gateway background worker settings.
type GatewayWorkers struct {
	// RefreshInterval defines how often tracked authors are re-indexed.
	RefreshInterval time.Duration
	// TrackedAuthors are indexed from startup.
	TrackedAuthors []string
}

// GetGatewayConfig builds and validates the gateway view of the merged
// structured configuration.
func GetGatewayConfig() (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newGatewayConfig(cfg)
}

func newGatewayConfig(cfg *StructuredConfig) (*GatewayConfig, error) {
	gatewayCfg := &GatewayConfig{
		App:     cfg.App,
		Chain:   cfg.Chain,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: GatewayWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			TrackedAuthors:  cfg.Workers.TrackedAuthors,
		},
	}

	return gatewayCfg, gatewayCfg.validate()
}
