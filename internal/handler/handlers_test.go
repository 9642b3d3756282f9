package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/metrics"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: time.Second}

	h, err := NewHandlers(&service.Services{}, metrics.NewMetrics("test"), cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, metrics.NewMetrics("test"), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoGatewayAddress)
}

func TestNewHandlers_NilServices(t *testing.T) {
	_, err := NewHandlers(nil, metrics.NewMetrics("test"), config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNilServices)
}
