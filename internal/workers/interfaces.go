// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutines and returns immediately; they run
// until ctx is cancelled or Stop is called. Stop blocks until everything
// Start launched has exited and must be safe to call on a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
