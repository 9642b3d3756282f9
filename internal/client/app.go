package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/tui"
	"github.com/MKhiriev/ether-notes/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers
	closers []io.Closer
	logger  *logger.Logger
}

// NewApp wires ui with the background workers of the client. closers are
// released in order once the UI exits.
func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger, closers ...io.Closer) (*App, error) {
	if services == nil || services.NotesService == nil {
		return nil, errors.New("client services are not configured")
	}
	if ui == nil {
		return nil, errors.New("client ui is not configured")
	}

	return &App{
		ui: ui,
		workers: workers.NewWorkers(
			workers.NewReceiptWatcher(services.NotesService, cfg.ReceiptPollInterval, log),
		),
		closers: closers,
		logger:  log,
	}, nil
}

// Run blocks until the UI exits. Quitting from the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.close()

	err := a.ui.Run(ctx)
	if err == nil || errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped")
		return nil
	}
	return fmt.Errorf("run ui: %w", err)
}

func (a *App) close() {
	a.workers.Stop()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Err(err).Msg("close client resource")
		}
	}
}
