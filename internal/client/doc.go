// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the core surface of the openleaf application.
//
// [App] drives the services through a login: it unlocks the stored secrets,
// runs the first sync and keeps the background sync worker running while a
// session is open. Every operation returns a structured result carrying a
// success flag and a user-facing message instead of a Go error.
package client
