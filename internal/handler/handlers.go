package handler

import (
	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/handler/http"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/metrics"
	"github.com/MKhiriev/ether-notes/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNilServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoGatewayAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, cfg.RequestTimeout, logger),
	}, nil
}
