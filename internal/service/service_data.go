// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/models"
)

type dataService struct {
	accounts     store.AccountRepository
	transactions store.TransactionRepository
	session      *Session
	logger       *logger.Logger
}

// NewDataService constructs a DataService over the pool-level repositories.
func NewDataService(repos store.Repositories, session *Session, logger *logger.Logger) DataService {
	return &dataService{
		accounts:     repos.Accounts,
		transactions: repos.Transactions,
		session:      session,
		logger:       logger,
	}
}

// ListAccounts implements DataService.
func (d *dataService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	user, ok := d.session.User()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	accounts, err := d.accounts.ListAccountsByUser(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dataService.ListAccounts").Msg("listing accounts failed")
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// ListTransactions implements DataService. Accounts of other profiles are
// reported as ErrAccountNotFound.
func (d *dataService) ListTransactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	accounts, err := d.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	owned := false
	for _, account := range accounts {
		if account.AccountID == accountID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, ErrAccountNotFound
	}

	txs, err := d.transactions.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dataService.ListTransactions").Msg("listing transactions failed")
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
