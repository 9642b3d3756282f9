package http

import (
	"time"

	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/metrics"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/validators"
)

type Handler struct {
	services  *service.Services
	metrics   *metrics.Metrics
	validator validators.Validator

	// requestTimeout bounds every API request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		validator:      validators.NewNoteValidator(),
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
