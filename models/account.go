// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Account is a bank account reported by the aggregation provider for a link.
// AccountID is unique within its link.
type Account struct {
	LinkID       string   `json:"link_id"`
	AccountID    string   `json:"account_id"`
	Name         string   `json:"name"`
	OfficialName string   `json:"official_name,omitempty"`
	Type         string   `json:"type"`
	Subtype      string   `json:"subtype,omitempty"`
	Mask         string   `json:"mask,omitempty"`
	Balances     Balances `json:"balances"`
}

// Balances holds the provider-reported balances of an account.
// Every amount is optional because institutions report different subsets.
type Balances struct {
	Available              decimal.NullDecimal `json:"available"`
	Current                decimal.NullDecimal `json:"current"`
	Limit                  decimal.NullDecimal `json:"limit"`
	ISOCurrencyCode        string              `json:"iso_currency_code,omitempty"`
	UnofficialCurrencyCode string              `json:"unofficial_currency_code,omitempty"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
