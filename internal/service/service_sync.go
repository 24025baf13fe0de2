// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/models"
)

// syncAllParallelism bounds how many links SyncAll syncs at once.
const syncAllParallelism = 4

// syncService is the concrete implementation of SyncService.
//
// One pass for a link:
//
//	START -> WAITING_FOR_INITIAL_READY (first pass only) -> PAGINATING -> DONE
//	                                                          |  ^
//	                                                          v  |
//	                                                      RESTART_PAGE
//
// Pages are accumulated in memory. A mutation-during-pagination error
// discards them and restarts from the cursor committed before the pass.
// Data is written in one database transaction with the cursor last.
type syncService struct {
	links store.LinkRepository
	tx    store.TxManager

	gateway adapter.AggregatorAdapter
	session *Session
	cfg     config.Sync

	mu      sync.Mutex
	running map[string]struct{}

	logger *logger.Logger
}

// NewSyncService constructs a SyncService.
func NewSyncService(
	repos store.Repositories,
	tx store.TxManager,
	gateway adapter.AggregatorAdapter,
	session *Session,
	cfg config.Sync,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		links:   repos.Links,
		tx:      tx,
		gateway: gateway,
		session: session,
		cfg:     cfg,
		running: make(map[string]struct{}),
		logger:  logger,
	}
}

// SyncAll implements SyncService.
//
// Every stored link of the current user gets an entry in the report, in
// link order. Links without a token in the session are reported as
// failed with ErrLinkLocked.
func (s *syncService) SyncAll(ctx context.Context) (models.SyncReport, error) {
	log := logger.FromContext(ctx)

	user, ok := s.session.User()
	if !ok {
		return models.SyncReport{}, ErrNotLoggedIn
	}
	if !s.gateway.Configured() {
		return models.SyncReport{}, ErrProviderNotConfigured
	}

	links, err := s.links.ListLinks(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "syncService.SyncAll").Msg("listing links failed")
		return models.SyncReport{}, fmt.Errorf("list links: %w", err)
	}

	reports := make([]models.LinkSyncReport, len(links))

	var g errgroup.Group
	g.SetLimit(syncAllParallelism)
	for i, link := range links {
		g.Go(func() error {
			if _, ok := s.session.Token(link.LinkID); !ok {
				reports[i] = models.LinkSyncReport{LinkID: link.LinkID, Err: ErrLinkLocked}
				return nil
			}
			reports[i] = s.SyncLink(ctx, link.LinkID)
			return nil
		})
	}
	_ = g.Wait()

	var report models.SyncReport
	for _, r := range reports {
		report.Add(r)
		if !r.Success {
			log.Warn().Err(r.Err).Str("link_id", r.LinkID).Msg("link sync failed")
		}
	}

	log.Info().
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("sync of all links finished")
	return report, nil
}

// SyncLink implements SyncService.
func (s *syncService) SyncLink(ctx context.Context, linkID string) models.LinkSyncReport {
	report := models.LinkSyncReport{LinkID: linkID}

	if !s.acquire(linkID) {
		report.Err = ErrSyncInProgress
		return report
	}
	defer s.release(linkID)

	if err := s.syncLink(ctx, linkID, &report); err != nil {
		report.Err = err
		return report
	}

	report.Success = true
	return report
}

func (s *syncService) syncLink(ctx context.Context, linkID string, report *models.LinkSyncReport) error {
	log := logger.FromContext(ctx).With().Str("link_id", linkID).Logger()

	token, ok := s.session.Token(linkID)
	if !ok {
		return ErrLinkLocked
	}

	cursor, err := s.links.GetCursor(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("read cursor: %w", err)
	}

	if cursor == "" {
		log.Debug().Msg("first sync, waiting for backfill")
		if err = s.waitUntilReady(ctx, token); err != nil {
			return err
		}
	}

	var pass *syncPass
	for attempt := 0; ; attempt++ {
		pass, err = s.paginate(ctx, token, cursor)
		if err == nil {
			break
		}
		if !errors.Is(err, adapter.ErrMutationDuringPagination) {
			return fmt.Errorf("fetch transactions: %w", err)
		}
		if attempt >= s.cfg.MaxRestarts {
			return fmt.Errorf("%w: %w", ErrRestartBudgetExceeded, err)
		}
		report.Restarts++
		log.Warn().Int("restart", report.Restarts).Msg("upstream data mutated during pagination, restarting pass")
	}

	snapshot, err := s.gateway.GetAccounts(ctx, token)
	if err != nil {
		return fmt.Errorf("fetch accounts: %w", err)
	}
	accounts := make([]models.Account, 0, len(snapshot.Accounts))
	for _, account := range snapshot.Accounts {
		account.LinkID = linkID
		accounts = append(accounts, account)
	}

	upserts, removed := pass.transactions(), pass.removedIDs()

	err = s.tx.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		// the link may have been removed while pages were fetched
		if _, err := repos.Links.GetCursor(ctx, linkID); err != nil {
			return err
		}
		if err := repos.Accounts.UpsertAccounts(ctx, accounts...); err != nil {
			return err
		}
		if err := repos.Transactions.UpsertTransactions(ctx, linkID, upserts...); err != nil {
			return err
		}
		if err := repos.Transactions.DeleteTransactions(ctx, removed...); err != nil {
			return err
		}
		return repos.Links.SetCursor(ctx, linkID, pass.cursor)
	})
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			log.Warn().Msg("link removed during sync, pass discarded")
			return ErrLinkNotFound
		}
		log.Err(err).Str("func", "syncService.syncLink").Msg("persisting sync pass failed")
		return fmt.Errorf("persist sync pass: %w", err)
	}

	report.Accounts = len(accounts)
	report.Added = pass.added
	report.Modified = pass.modified
	report.Removed = pass.removed

	log.Info().
		Int("accounts", report.Accounts).
		Int("added", report.Added).
		Int("modified", report.Modified).
		Int("removed", report.Removed).
		Int("restarts", report.Restarts).
		Msg("link synced")
	return nil
}

// paginate fetches every page starting at cursor. Any error discards the
// whole pass.
func (s *syncService) paginate(ctx context.Context, token, cursor string) (*syncPass, error) {
	pass := newSyncPass(cursor)

	for {
		page, err := s.gateway.SyncTransactionsPage(ctx, token, pass.cursor, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		pass.apply(page)

		if page.HasMore && page.NextCursor == pass.cursor {
			return nil, ErrCursorStalled
		}
		pass.cursor = page.NextCursor

		if !page.HasMore {
			return pass, nil
		}
	}
}

// waitUntilReady polls the backfill status at a fixed interval until the
// provider reports it complete or the ready timeout elapses.
func (s *syncService) waitUntilReady(ctx context.Context, token string) error {
	timeout := time.NewTimer(s.cfg.ReadyTimeout)
	defer timeout.Stop()

	ticker := time.NewTicker(s.cfg.ReadyPollInterval)
	defer ticker.Stop()

	for {
		status, err := s.gateway.SyncStatus(ctx, token)
		if err != nil {
			return fmt.Errorf("probe backfill status: %w", err)
		}
		if status.Ready() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout.C:
			return fmt.Errorf("%w: last status %s", ErrBackfillTimeout, status)
		case <-ticker.C:
		}
	}
}

func (s *syncService) acquire(linkID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.running[linkID]; busy {
		return false
	}
	s.running[linkID] = struct{}{}
	return true
}

func (s *syncService) release(linkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.running, linkID)
}

// syncPass accumulates the pages of one pass. Later events for the same
// transaction id win: a removal drops an earlier upsert and an upsert
// cancels an earlier removal.
type syncPass struct {
	cursor string

	upserts []models.Transaction
	index   map[string]int

	removedOrder []string
	removedSet   map[string]struct{}

	added, modified, removed int
}

func newSyncPass(cursor string) *syncPass {
	return &syncPass{
		cursor:     cursor,
		index:      make(map[string]int),
		removedSet: make(map[string]struct{}),
	}
}

func (p *syncPass) apply(page models.TransactionsSyncPage) {
	p.added += len(page.Added)
	p.modified += len(page.Modified)
	p.removed += len(page.Removed)

	for _, tx := range page.Added {
		p.put(tx)
	}
	for _, tx := range page.Modified {
		p.put(tx)
	}
	for _, id := range page.Removed {
		p.drop(id)
	}
}

func (p *syncPass) put(tx models.Transaction) {
	delete(p.removedSet, tx.TransactionID)

	if i, ok := p.index[tx.TransactionID]; ok {
		p.upserts[i] = tx
		return
	}
	p.index[tx.TransactionID] = len(p.upserts)
	p.upserts = append(p.upserts, tx)
}

func (p *syncPass) drop(id string) {
	if _, ok := p.removedSet[id]; !ok {
		p.removedOrder = append(p.removedOrder, id)
	}
	p.removedSet[id] = struct{}{}
}

// transactions returns the upserts that were not removed later in the pass.
func (p *syncPass) transactions() []models.Transaction {
	out := make([]models.Transaction, 0, len(p.upserts))
	for _, tx := range p.upserts {
		if _, gone := p.removedSet[tx.TransactionID]; gone {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func (p *syncPass) removedIDs() []string {
	out := make([]string, 0, len(p.removedSet))
	seen := make(map[string]struct{}, len(p.removedSet))
	for _, id := range p.removedOrder {
		if _, ok := p.removedSet[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
