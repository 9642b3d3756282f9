package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/service"
)

// NewReceiptWatcher settles journal entries that are still pending, first on
// Start and then each interval. It picks up transactions whose confirmation
// was never observed, for example because the client quit while waiting.
func NewReceiptWatcher(notes service.NotesService, interval time.Duration, log *logger.Logger) Worker {
	return newTickerJob("receipt-watcher", interval, func(ctx context.Context) error {
		changed, err := notes.ReconcilePending(ctx)
		if changed > 0 {
			log.Info().Int("settled", changed).Msg("pending transactions settled")
		}
		return err
	}, log)
}
