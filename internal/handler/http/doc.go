// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the loopback JSON API of openleaf.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging and session token checks are handled here before
// requests are delegated to the client core. Every response body is a
// result struct carrying a success flag and a user-facing error message.
package http
