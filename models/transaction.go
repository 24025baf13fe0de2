// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// DateLayout is the calendar date format used by the provider and at rest.
const DateLayout = "2006-01-02"

// Transaction is a single provider-reported transaction.
//
// TransactionID is the upsert key: a later version of the same transaction
// (pending to posted, corrected amount) overwrites the stored row.
type Transaction struct {
	TransactionID  string          `json:"transaction_id"`
	AccountID      string          `json:"account_id"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currency_code"`
	Date           string          `json:"date"`
	Name           string          `json:"name"`
	MerchantName   *string         `json:"merchant_name,omitempty"`
	Pending        bool            `json:"pending"`
	PaymentChannel string          `json:"payment_channel"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
