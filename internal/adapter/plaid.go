// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/utils"
	"github.com/MKhiriev/openleaf/internal/validators"
	"github.com/MKhiriev/openleaf/models"
)

const (
	pathLinkTokenCreate     = "/link/token/create"
	pathPublicTokenExchange = "/item/public_token/exchange"
	pathAccountsGet         = "/accounts/get"
	pathInstitutionsGetByID = "/institutions/get_by_id"
	pathTransactionsSync    = "/transactions/sync"
	pathItemRemove          = "/item/remove"

	productTransactions = "transactions"
	maxSyncCount        = 500
)

type plaidAdapter struct {
	client    *utils.HTTPClient
	validator validators.Validator

	clientName   string
	countryCodes []string
	language     string

	mu       sync.RWMutex
	clientID string
	secret   string

	logger *logger.Logger
}

// NewPlaidAdapter constructs an HTTP implementation of [AggregatorAdapter]
// for the environment (or base URL override) in cfg. The adapter starts
// without credentials.
func NewPlaidAdapter(cfg config.Adapter, v validators.Validator, log *logger.Logger) (AggregatorAdapter, error) {
	baseURL, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, fmt.Errorf("invalid adapter configuration: %w", err)
	}

	return &plaidAdapter{
		client:       utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		validator:    v,
		clientName:   cfg.ClientName,
		countryCodes: cfg.CountryCodes,
		language:     cfg.Language,
		logger:       log,
	}, nil
}

// SetCredentials implements [AggregatorAdapter].
func (p *plaidAdapter) SetCredentials(clientID, secret string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clientID = clientID
	p.secret = secret

	p.logger.Debug().Bool("configured", clientID != "" && secret != "").Msg("aggregation provider credentials updated")
}

// ClearCredentials implements [AggregatorAdapter].
func (p *plaidAdapter) ClearCredentials() {
	p.SetCredentials("", "")
}

// Configured implements [AggregatorAdapter].
func (p *plaidAdapter) Configured() bool {
	_, err := p.auth()
	return err == nil
}

// CreateLinkToken implements [AggregatorAdapter].
func (p *plaidAdapter) CreateLinkToken(ctx context.Context, clientUserID string) (models.LinkToken, error) {
	creds, err := p.auth()
	if err != nil {
		return models.LinkToken{}, err
	}

	var resp linkTokenCreateResponse
	err = p.post(ctx, pathLinkTokenCreate, linkTokenCreateRequest{
		auth:         creds,
		ClientName:   p.clientName,
		User:         linkTokenUser{ClientUserID: clientUserID},
		Products:     []string{productTransactions},
		CountryCodes: p.countryCodes,
		Language:     p.language,
	}, &resp)
	if err != nil {
		return models.LinkToken{}, err
	}

	return models.LinkToken{LinkToken: resp.LinkToken, Expiration: resp.Expiration}, nil
}

// ExchangePublicToken implements [AggregatorAdapter].
func (p *plaidAdapter) ExchangePublicToken(ctx context.Context, publicToken string) (models.TokenExchange, error) {
	creds, err := p.auth()
	if err != nil {
		return models.TokenExchange{}, err
	}

	var resp publicTokenExchangeResponse
	err = p.post(ctx, pathPublicTokenExchange, publicTokenExchangeRequest{auth: creds, PublicToken: publicToken}, &resp)
	if err != nil {
		return models.TokenExchange{}, err
	}

	return models.TokenExchange{AccessToken: resp.AccessToken, ItemID: resp.ItemID}, nil
}

// GetAccounts implements [AggregatorAdapter].
func (p *plaidAdapter) GetAccounts(ctx context.Context, accessToken string) (models.AccountsSnapshot, error) {
	creds, err := p.auth()
	if err != nil {
		return models.AccountsSnapshot{}, err
	}

	var resp accountsGetResponse
	err = p.post(ctx, pathAccountsGet, accessTokenRequest{auth: creds, AccessToken: accessToken}, &resp)
	if err != nil {
		return models.AccountsSnapshot{}, err
	}

	snapshot := models.AccountsSnapshot{
		ItemID:          resp.Item.ItemID,
		InstitutionID:   resp.Item.InstitutionID,
		InstitutionName: resp.Item.InstitutionName,
		Accounts:        make([]models.Account, 0, len(resp.Accounts)),
	}
	for _, a := range resp.Accounts {
		snapshot.Accounts = append(snapshot.Accounts, a.toModel())
	}

	return snapshot, nil
}

// GetInstitution implements [AggregatorAdapter].
func (p *plaidAdapter) GetInstitution(ctx context.Context, institutionID string) (models.Institution, error) {
	creds, err := p.auth()
	if err != nil {
		return models.Institution{}, err
	}

	var resp institutionGetResponse
	err = p.post(ctx, pathInstitutionsGetByID, institutionGetRequest{
		auth:          creds,
		InstitutionID: institutionID,
		CountryCodes:  p.countryCodes,
	}, &resp)
	if err != nil {
		return models.Institution{}, err
	}

	return models.Institution{InstitutionID: resp.Institution.InstitutionID, Name: resp.Institution.Name}, nil
}

// SyncTransactionsPage implements [AggregatorAdapter]. count is clamped to
// the range the provider accepts.
func (p *plaidAdapter) SyncTransactionsPage(ctx context.Context, accessToken, cursor string, count int) (models.TransactionsSyncPage, error) {
	creds, err := p.auth()
	if err != nil {
		return models.TransactionsSyncPage{}, err
	}

	var resp transactionsSyncResponse
	err = p.post(ctx, pathTransactionsSync, transactionsSyncRequest{
		auth:        creds,
		AccessToken: accessToken,
		Cursor:      cursor,
		Count:       min(max(count, 1), maxSyncCount),
	}, &resp)
	if err != nil {
		return models.TransactionsSyncPage{}, err
	}

	removed := make([]string, 0, len(resp.Removed))
	for _, r := range resp.Removed {
		removed = append(removed, r.TransactionID)
	}

	return models.TransactionsSyncPage{
		Added:        transactionsToModels(resp.Added),
		Modified:     transactionsToModels(resp.Modified),
		Removed:      removed,
		NextCursor:   resp.NextCursor,
		HasMore:      resp.HasMore,
		UpdateStatus: models.TransactionsUpdateStatus(resp.TransactionsUpdateStatus),
	}, nil
}

// SyncStatus implements [AggregatorAdapter].
func (p *plaidAdapter) SyncStatus(ctx context.Context, accessToken string) (models.TransactionsUpdateStatus, error) {
	page, err := p.SyncTransactionsPage(ctx, accessToken, "", 1)
	if err != nil {
		return "", err
	}
	return page.UpdateStatus, nil
}

// RemoveItem implements [AggregatorAdapter].
func (p *plaidAdapter) RemoveItem(ctx context.Context, accessToken string) error {
	creds, err := p.auth()
	if err != nil {
		return err
	}

	var resp itemRemoveResponse
	return p.post(ctx, pathItemRemove, accessTokenRequest{auth: creds, AccessToken: accessToken}, &resp)
}

func (p *plaidAdapter) auth() (auth, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.clientID == "" || p.secret == "" {
		return auth{}, ErrCredentialsNotSet
	}
	return auth{ClientID: p.clientID, Secret: p.secret}, nil
}

// post sends body to path and decodes and validates a successful response
// into out.
func (p *plaidAdapter) post(ctx context.Context, path string, body, out any) error {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		log.Err(err).Str("func", "plaidAdapter.post").Str("path", path).Msg("request to aggregation provider failed")
		return fmt.Errorf("%w: %s: %w", ErrTransient, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		var code, requestID string
		if providerErr, ok := err.(*ProviderError); ok {
			code, requestID = providerErr.Code, providerErr.RequestID
		}
		log.Warn().
			Str("func", "plaidAdapter.post").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Str("error_code", code).
			Str("request_id", requestID).
			Msg("aggregation provider returned an error")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		log.Err(err).Str("func", "plaidAdapter.post").Str("path", path).Msg("undecodable provider response")
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, path, err)
	}
	if err = p.validator.Validate(ctx, out); err != nil {
		log.Err(err).Str("func", "plaidAdapter.post").Str("path", path).Msg("provider response failed validation")
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, path, err)
	}

	return nil
}
