// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/metrics"
	"github.com/MKhiriev/ether-notes/internal/service"
)

// DBStatsFunc reports connection pool statistics. It may be nil.
type DBStatsFunc func() sql.DBStats

// NewIndexRefresher re-indexes every tracked author each interval and
// records the outcome in m.
func NewIndexRefresher(gateway service.GatewayService, m *metrics.Metrics, dbStats DBStatsFunc, interval time.Duration, log *logger.Logger) Worker {
	return newTickerJob("index-refresher", interval, func(ctx context.Context) error {
		start := time.Now()
		stats, err := gateway.RefreshAll(ctx)
		m.ObserveRefresh(stats, time.Since(start), err)
		if dbStats != nil {
			m.RecordDBPoolStats(dbStats())
		}

		log.Info().
			Int("authors", stats.Authors).
			Int("notes", stats.Notes).
			Int("failed", stats.Failed).
			Dur("took", time.Since(start)).
			Msg("index refreshed")
		return err
	}, log)
}
