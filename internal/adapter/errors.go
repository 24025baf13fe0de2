// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrCredentialsNotSet is returned by every call made before
	// SetCredentials or after ClearCredentials.
	ErrCredentialsNotSet = errors.New("aggregation provider credentials are not set")

	// ErrTransient marks failures worth retrying later: transport errors,
	// timeouts, 5xx and 429 responses.
	ErrTransient = errors.New("transient aggregation provider error")

	// ErrMutationDuringPagination is reported when the item's transactions
	// changed while a multi-page sync was in progress. The whole pass must
	// restart from the cursor it began with.
	ErrMutationDuringPagination = errors.New("transactions mutated during pagination")

	// ErrItemNotFound is reported when the item or its access token no
	// longer exists upstream.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidResponse is returned when a successful response does not
	// have the expected shape.
	ErrInvalidResponse = errors.New("invalid aggregation provider response")
)

// Provider error codes with dedicated handling.
const (
	CodeMutationDuringPagination = "TRANSACTIONS_SYNC_MUTATION_DURING_PAGINATION"
	CodeItemNotFound             = "ITEM_NOT_FOUND"
	CodeInvalidAccessToken       = "INVALID_ACCESS_TOKEN"
)

// ProviderError is a non-2xx response of the aggregation provider.
type ProviderError struct {
	StatusCode     int    `json:"-"`
	Type           string `json:"error_type"`
	Code           string `json:"error_code"`
	Message        string `json:"error_message"`
	DisplayMessage string `json:"display_message"`
	RequestID      string `json:"request_id"`
}

func (e *ProviderError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("provider error: http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error: http %d: %s/%s: %s", e.StatusCode, e.Type, e.Code, e.Message)
}

// Is maps the error onto the package sentinels.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrMutationDuringPagination:
		return e.Code == CodeMutationDuringPagination
	case ErrItemNotFound:
		return e.Code == CodeItemNotFound || e.Code == CodeInvalidAccessToken
	case ErrTransient:
		return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
	}
	return false
}
