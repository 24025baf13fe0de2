// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

// allSyncer is the part of the sync engine the worker drives.
type allSyncer interface {
	SyncAll(ctx context.Context) (models.SyncReport, error)
}

var _ Worker = (*SyncWorker)(nil)

// SyncWorker runs SyncAll on a ticker while a session is open.
type SyncWorker struct {
	syncer   allSyncer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a SyncWorker that is idle until Start is called.
// A negative interval disables it: Start then does nothing.
func NewSyncWorker(syncer allSyncer, cfg config.Workers, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		syncer:   syncer,
		interval: cfg.SyncInterval,
		logger:   logger,
	}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that syncs all links every interval. The first tick
// comes one interval after Start.
func (w *SyncWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("background sync disabled")
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.logger.WithContext(ctx))
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.tick(jobCtx)
			}
		}
	}()

	w.logger.Info().Dur("interval", w.interval).Msg("background sync started")
}

func (w *SyncWorker) tick(ctx context.Context) {
	report, err := w.syncer.SyncAll(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("background sync skipped")
		return
	}
	for _, link := range report.Links {
		if !link.Success {
			w.logger.Warn().Err(link.Err).Str("link_id", link.LinkID).Msg("background sync of link failed")
		}
	}
	w.logger.Debug().
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("background sync finished")
}

// Stop implements Worker. It cancels the loop and blocks until the
// goroutine has exited. Safe to call when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
