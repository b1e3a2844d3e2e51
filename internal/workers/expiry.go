// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// DefaultExpiryInterval is how often [ExpiryWorker] sweeps approvals.
const DefaultExpiryInterval = time.Hour

// ExpiryWorker periodically marks approved requests whose expiration date
// passed as expired. The first sweep happens right after Run.
type ExpiryWorker struct {
	expirer  Expirer
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	done chan struct{}
}

func NewExpiryWorker(expirer Expirer, interval time.Duration, logger *logger.Logger) *ExpiryWorker {
	if interval <= 0 {
		interval = DefaultExpiryInterval
	}

	return &ExpiryWorker{
		expirer:  expirer,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (w *ExpiryWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

// Done is closed once the worker goroutine has returned.
func (w *ExpiryWorker) Done() <-chan struct{} {
	return w.done
}

func (w *ExpiryWorker) loop(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("expiry worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	n, err := w.expirer.ExpireApprovals(ctx, w.now())
	if err != nil {
		w.logger.Err(err).Msg("expiry sweep failed")
		return
	}
	if n > 0 {
		w.logger.Info().Int64("expired", n).Msg("approvals expired")
	}
}
