// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators narrows untrusted values at the edges of the client:
// user input reaching the core surface and response bodies returned by the
// aggregation provider.
//
// Rules are declared as `validate` struct tags and checked by
// github.com/go-playground/validator. A failed check is reported as
// [ErrValidationFailed] carrying the offending fields by their JSON names.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided struct and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
