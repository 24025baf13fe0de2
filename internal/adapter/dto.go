// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/openleaf/models"
)

// auth is embedded into every request body.
type auth struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
}

type linkTokenUser struct {
	ClientUserID string `json:"client_user_id"`
}

type linkTokenCreateRequest struct {
	auth
	ClientName   string        `json:"client_name"`
	User         linkTokenUser `json:"user"`
	Products     []string      `json:"products"`
	CountryCodes []string      `json:"country_codes"`
	Language     string        `json:"language"`
}

type linkTokenCreateResponse struct {
	LinkToken  string    `json:"link_token" validate:"required"`
	Expiration time.Time `json:"expiration"`
	RequestID  string    `json:"request_id"`
}

type publicTokenExchangeRequest struct {
	auth
	PublicToken string `json:"public_token"`
}

type publicTokenExchangeResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	ItemID      string `json:"item_id" validate:"required"`
	RequestID   string `json:"request_id"`
}

type accessTokenRequest struct {
	auth
	AccessToken string `json:"access_token"`
}

type itemDTO struct {
	ItemID          string `json:"item_id" validate:"required"`
	InstitutionID   string `json:"institution_id"`
	InstitutionName string `json:"institution_name"`
}

type accountDTO struct {
	AccountID    string          `json:"account_id" validate:"required"`
	Name         string          `json:"name"`
	OfficialName string          `json:"official_name"`
	Type         string          `json:"type"`
	Subtype      string          `json:"subtype"`
	Mask         string          `json:"mask"`
	Balances     models.Balances `json:"balances"`
}

type accountsGetResponse struct {
	Accounts  []accountDTO `json:"accounts" validate:"dive"`
	Item      itemDTO      `json:"item"`
	RequestID string       `json:"request_id"`
}

type institutionGetRequest struct {
	auth
	InstitutionID string   `json:"institution_id"`
	CountryCodes  []string `json:"country_codes"`
}

type institutionDTO struct {
	InstitutionID string `json:"institution_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
}

type institutionGetResponse struct {
	Institution institutionDTO `json:"institution"`
	RequestID   string         `json:"request_id"`
}

type transactionsSyncRequest struct {
	auth
	AccessToken string `json:"access_token"`
	Cursor      string `json:"cursor,omitempty"`
	Count       int    `json:"count"`
}

type transactionDTO struct {
	TransactionID          string          `json:"transaction_id" validate:"required"`
	AccountID              string          `json:"account_id" validate:"required"`
	Amount                 decimal.Decimal `json:"amount"`
	ISOCurrencyCode        string          `json:"iso_currency_code"`
	UnofficialCurrencyCode string          `json:"unofficial_currency_code"`
	Date                   string          `json:"date" validate:"required,datetime=2006-01-02"`
	Name                   string          `json:"name"`
	MerchantName           *string         `json:"merchant_name"`
	Pending                bool            `json:"pending"`
	PaymentChannel         string          `json:"payment_channel"`
}

type removedTransactionDTO struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

type transactionsSyncResponse struct {
	Added                    []transactionDTO        `json:"added" validate:"dive"`
	Modified                 []transactionDTO        `json:"modified" validate:"dive"`
	Removed                  []removedTransactionDTO `json:"removed" validate:"dive"`
	NextCursor               string                  `json:"next_cursor" validate:"required"`
	HasMore                  bool                    `json:"has_more"`
	TransactionsUpdateStatus string                  `json:"transactions_update_status"`
	RequestID                string                  `json:"request_id"`
}

type itemRemoveResponse struct {
	RequestID string `json:"request_id"`
}

func (a accountDTO) toModel() models.Account {
	return models.Account{
		AccountID:    a.AccountID,
		Name:         a.Name,
		OfficialName: a.OfficialName,
		Type:         a.Type,
		Subtype:      a.Subtype,
		Mask:         a.Mask,
		Balances:     a.Balances,
	}
}

func (t transactionDTO) toModel() models.Transaction {
	currency := t.ISOCurrencyCode
	if currency == "" {
		currency = t.UnofficialCurrencyCode
	}

	return models.Transaction{
		TransactionID:  t.TransactionID,
		AccountID:      t.AccountID,
		Amount:         t.Amount,
		CurrencyCode:   currency,
		Date:           t.Date,
		Name:           t.Name,
		MerchantName:   t.MerchantName,
		Pending:        t.Pending,
		PaymentChannel: t.PaymentChannel,
	}
}

func transactionsToModels(in []transactionDTO) []models.Transaction {
	out := make([]models.Transaction, 0, len(in))
	for _, t := range in {
		out = append(out, t.toModel())
	}
	return out
}
