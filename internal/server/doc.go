// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the loopback API server of the client process.
//
// It owns the listener lifecycle: startup, shutdown on context
// cancellation and a bounded graceful drain of in-flight requests.
package server
