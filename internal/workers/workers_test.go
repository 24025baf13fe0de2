// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

// spySyncer counts SyncAll calls.
type spySyncer struct {
	calls  atomic.Int64
	report models.SyncReport
	err    error
}

func (s *spySyncer) SyncAll(context.Context) (models.SyncReport, error) {
	s.calls.Add(1)
	return s.report, s.err
}

// recordingWorker appends its id to a shared journal on Start and Stop.
type recordingWorker struct {
	id      string
	journal *[]string
}

func (r *recordingWorker) Start(context.Context) { *r.journal = append(*r.journal, "start "+r.id) }
func (r *recordingWorker) Stop()                 { *r.journal = append(*r.journal, "stop "+r.id) }

// ── Workers ──────────────────────────────────────────────────────────────────

func TestWorkers_StartAndStopOrder(t *testing.T) {
	var journal []string
	ws := NewWorkers(
		&recordingWorker{id: "a", journal: &journal},
		&recordingWorker{id: "b", journal: &journal},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, journal)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

// ── SyncWorker ───────────────────────────────────────────────────────────────

func TestSyncWorker_TicksSyncAll(t *testing.T) {
	spy := &spySyncer{report: models.SyncReport{Links: []models.LinkSyncReport{
		{LinkID: "L1", Success: false, Err: errors.New("boom")},
	}}}
	w := NewSyncWorker(spy, config.Workers{SyncInterval: 10 * time.Millisecond}, logger.Nop())

	w.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "SyncAll called %d times", got)
}

func TestSyncWorker_StopHaltsTicks(t *testing.T) {
	spy := &spySyncer{err: errors.New("not logged in")}
	w := NewSyncWorker(spy, config.Workers{SyncInterval: 10 * time.Millisecond}, logger.Nop())

	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls expected after Stop")
}

func TestSyncWorker_ContextCancelStopsLoop(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, config.Workers{SyncInterval: 10 * time.Millisecond}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	w.Start(ctx)
	cancel()
	w.Stop()

	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, spy.calls.Load())
}

func TestSyncWorker_RestartReplacesLoop(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, config.Workers{SyncInterval: 10 * time.Millisecond}, logger.Nop())

	w.Start(context.Background())
	w.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	w.Stop()

	// a single loop ticks about three times in 35ms; two loops would double it
	assert.LessOrEqual(t, spy.calls.Load(), int64(5))
}

func TestSyncWorker_Disabled(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, config.Workers{SyncInterval: -1}, logger.Nop())

	w.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	w.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestSyncWorker_StopBeforeStart_NoPanic(t *testing.T) {
	w := NewSyncWorker(&spySyncer{}, config.Workers{SyncInterval: time.Second}, logger.Nop())

	assert.NotPanics(t, func() { w.Stop() })
}
