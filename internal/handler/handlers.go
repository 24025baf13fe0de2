// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the client process.
package handler

import (
	"github.com/MKhiriev/openleaf/internal/client"
	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/handler/http"
	"github.com/MKhiriev/openleaf/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers enabled by cfg. The loopback API is the
// only transport; an empty address is a misconfiguration.
func NewHandlers(core client.Core, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(core, logger)}, nil
}
