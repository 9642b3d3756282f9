// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/ether-notes/internal/logger"
)

const defaultInterval = 5 * time.Minute

// tickerJob calls run once on Start and then every interval until stopped.
type tickerJob struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newTickerJob(name string, interval time.Duration, run func(ctx context.Context) error, log *logger.Logger) *tickerJob {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &tickerJob{name: name, interval: interval, run: run, logger: log}
}

// Start stops any previous run of the job and launches a new one bound to ctx.
func (j *tickerJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.tick(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()

	j.logger.Info().Str("worker", j.name).Dur("interval", j.interval).Msg("worker started")
}

// Stop cancels the job and waits for its goroutine.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	j.wg.Wait()
	j.logger.Info().Str("worker", j.name).Msg("worker stopped")
}

func (j *tickerJob) tick(ctx context.Context) {
	if err := j.run(ctx); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("worker", j.name).Msg("run failed")
	}
}
