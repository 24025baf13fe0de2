// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/crypto"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/internal/utils"
	"github.com/MKhiriev/openleaf/internal/validators"
)

// ClientServices bundles the services of one client process. They share a
// single Session.
type ClientServices struct {
	Session *Session

	AuthService AuthService
	LinkService LinkService
	SyncService SyncService
	DataService DataService
}

// NewClientServices wires the services over the pool-level repositories
// and the transaction manager of storages.
func NewClientServices(
	repos store.Repositories,
	tx store.TxManager,
	gateway adapter.AggregatorAdapter,
	validator validators.Validator,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *ClientServices {
	session := NewSession()
	vault := crypto.NewVault(crypto.WithIterations(cfg.Crypto.KDFIterations))
	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)
	ids := utils.NewUUIDGenerator()

	syncSvc := NewSyncService(repos, tx, gateway, session, cfg.Sync, logger)

	return &ClientServices{
		Session:     session,
		AuthService: NewAuthService(repos, hasher, validator, ids, gateway, session, cfg.App, logger),
		LinkService: NewLinkService(repos, tx, vault, hasher, validator, ids, gateway, session, syncSvc, logger),
		SyncService: syncSvc,
		DataService: NewDataService(repos, session, logger),
	}
}
