// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/crypto"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/internal/validators"
	"github.com/MKhiriev/openleaf/models"
)

// defaultFriendlyName names a link when neither the caller nor the
// provider supplied a name.
const defaultFriendlyName = "Linked institution"

// linkService is the concrete implementation of LinkService. It is the only
// component that reads sealed secrets and fills the session.
type linkService struct {
	users store.UserRepository
	links store.LinkRepository
	tx    store.TxManager

	vault     crypto.Vault
	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       idGenerator

	gateway adapter.AggregatorAdapter
	session *Session
	syncer  SyncService

	now    func() time.Time
	logger *logger.Logger
}

// NewLinkService constructs a LinkService. syncer runs the initial sync of
// a completed link.
func NewLinkService(
	repos store.Repositories,
	tx store.TxManager,
	vault crypto.Vault,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	ids idGenerator,
	gateway adapter.AggregatorAdapter,
	session *Session,
	syncer SyncService,
	logger *logger.Logger,
) LinkService {
	return &linkService{
		users:     repos.Users,
		links:     repos.Links,
		tx:        tx,
		vault:     vault,
		hasher:    hasher,
		validator: validator,
		ids:       ids,
		gateway:   gateway,
		session:   session,
		syncer:    syncer,
		now:       time.Now,
		logger:    logger,
	}
}

// UnlockSession implements LinkService.
//
// Provider credentials are all-or-nothing: if either is missing or fails to
// decrypt, nothing is unlocked. Link tokens are best-effort: a token that
// fails to decrypt marks only its own link as locked.
func (l *linkService) UnlockSession(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	user, err := l.storedUser(ctx)
	if err != nil {
		return err
	}
	if !user.HasProviderCredentials() {
		return ErrProviderNotConfigured
	}

	secret, err := l.vault.Decrypt(*user.EncryptedAPISecret, password)
	if err != nil {
		log.Warn().Err(err).Str("func", "linkService.UnlockSession").Msg("provider secret did not decrypt")
		return fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}
	clientID, err := l.vault.Decrypt(*user.EncryptedAPIClientID, password)
	if err != nil {
		log.Warn().Err(err).Str("func", "linkService.UnlockSession").Msg("provider client id did not decrypt")
		return fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	links, err := l.links.ListLinks(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "linkService.UnlockSession").Msg("listing links failed")
		return fmt.Errorf("list links: %w", err)
	}

	l.gateway.SetCredentials(clientID, secret)

	var locked int
	for _, link := range links {
		token, err := l.vault.Decrypt(link.EncryptedAccessToken, password)
		if err != nil {
			locked++
			l.session.MarkLocked(link.LinkID)
			log.Warn().Err(err).Str("link_id", link.LinkID).Msg("link access token did not decrypt, link stays locked")
			continue
		}
		l.session.SetToken(link.LinkID, token)
	}

	log.Info().
		Int("links", len(links)).
		Int("locked", locked).
		Msg("session unlocked")
	return nil
}

// RegisterProvider implements LinkService.
func (l *linkService) RegisterProvider(ctx context.Context, password string, creds models.ProviderCredentials) error {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	user, err := l.storedUser(ctx)
	if err != nil {
		return err
	}
	if err = verifyPassword(l.hasher, user, password); err != nil {
		return err
	}

	sealedSecret, err := l.vault.Encrypt(creds.Secret, password)
	if err != nil {
		return fmt.Errorf("seal provider secret: %w", err)
	}
	sealedClientID, err := l.vault.Encrypt(creds.ClientID, password)
	if err != nil {
		return fmt.Errorf("seal provider client id: %w", err)
	}

	if err = l.users.SetProviderCredentials(ctx, user.UserID, sealedSecret, sealedClientID); err != nil {
		log.Err(err).Str("func", "linkService.RegisterProvider").Msg("storing provider credentials failed")
		return fmt.Errorf("store provider credentials: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("provider credentials stored")

	l.session.ClearTokens()
	return l.UnlockSession(ctx, password)
}

// ClearProvider implements LinkService.
func (l *linkService) ClearProvider(ctx context.Context) error {
	user, ok := l.session.User()
	if !ok {
		return ErrNotLoggedIn
	}

	if err := l.users.ClearProviderCredentials(ctx, user.UserID); err != nil {
		return fmt.Errorf("clear provider credentials: %w", err)
	}

	l.gateway.ClearCredentials()
	l.session.ClearTokens()

	logger.FromContext(ctx).Info().Str("user_id", user.UserID).Msg("provider credentials cleared")
	return nil
}

// CreateLinkToken implements LinkService.
func (l *linkService) CreateLinkToken(ctx context.Context) (models.LinkToken, error) {
	user, ok := l.session.User()
	if !ok {
		return models.LinkToken{}, ErrNotLoggedIn
	}
	if !l.gateway.Configured() {
		return models.LinkToken{}, ErrProviderNotConfigured
	}

	token, err := l.gateway.CreateLinkToken(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "linkService.CreateLinkToken").Msg("link token creation failed")
		return models.LinkToken{}, providerError(err)
	}
	return token, nil
}

// CompleteLink implements LinkService.
func (l *linkService) CompleteLink(ctx context.Context, password, publicToken, friendlyName string) (models.LinkSummary, models.LinkSyncReport, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(publicToken) == "" {
		return models.LinkSummary{}, models.LinkSyncReport{}, fmt.Errorf("%w: empty public token", ErrInvalidInput)
	}

	user, err := l.storedUser(ctx)
	if err != nil {
		return models.LinkSummary{}, models.LinkSyncReport{}, err
	}
	if !l.gateway.Configured() {
		return models.LinkSummary{}, models.LinkSyncReport{}, ErrProviderNotConfigured
	}
	if err = verifyPassword(l.hasher, user, password); err != nil {
		return models.LinkSummary{}, models.LinkSyncReport{}, err
	}

	exchange, err := l.gateway.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		log.Err(err).Str("func", "linkService.CompleteLink").Msg("public token exchange failed")
		return models.LinkSummary{}, models.LinkSyncReport{}, providerError(err)
	}

	link := models.Link{
		LinkID:    l.ids.Generate(),
		UserID:    user.UserID,
		ItemID:    exchange.ItemID,
		CreatedAt: l.now().UTC(),
	}
	l.describeInstitution(ctx, exchange.AccessToken, &link)

	link.FriendlyName = strings.TrimSpace(friendlyName)
	if link.FriendlyName == "" {
		link.FriendlyName = link.InstitutionName
	}
	if link.FriendlyName == "" {
		link.FriendlyName = defaultFriendlyName
	}

	link.EncryptedAccessToken, err = l.vault.Encrypt(exchange.AccessToken, password)
	if err != nil {
		return models.LinkSummary{}, models.LinkSyncReport{}, fmt.Errorf("seal access token: %w", err)
	}

	if err = l.links.AddLink(ctx, link); err != nil {
		log.Err(err).Str("func", "linkService.CompleteLink").Str("item_id", link.ItemID).Msg("persisting link failed")
		return models.LinkSummary{}, models.LinkSyncReport{}, fmt.Errorf("persist link: %w", err)
	}
	l.session.SetToken(link.LinkID, exchange.AccessToken)

	log.Info().
		Str("link_id", link.LinkID).
		Str("item_id", link.ItemID).
		Str("institution_id", link.InstitutionID).
		Msg("link created")

	report := l.syncer.SyncLink(ctx, link.LinkID)
	if !report.Success {
		log.Warn().Err(report.Err).Str("link_id", link.LinkID).Msg("initial sync failed, link kept")
	}

	summary := toLinkSummary(link, true)
	summary.Synced = report.Success
	return summary, report, nil
}

// describeInstitution fills the institution fields of link. Failures are
// logged and leave the fields empty.
func (l *linkService) describeInstitution(ctx context.Context, accessToken string, link *models.Link) {
	log := logger.FromContext(ctx)

	snapshot, err := l.gateway.GetAccounts(ctx, accessToken)
	if err != nil {
		log.Warn().Err(err).Str("item_id", link.ItemID).Msg("could not fetch accounts of new item")
		return
	}
	if snapshot.ItemID != "" {
		link.ItemID = snapshot.ItemID
	}
	link.InstitutionID = snapshot.InstitutionID
	link.InstitutionName = snapshot.InstitutionName

	if link.InstitutionName != "" || link.InstitutionID == "" {
		return
	}
	institution, err := l.gateway.GetInstitution(ctx, link.InstitutionID)
	if err != nil {
		log.Warn().Err(err).Str("institution_id", link.InstitutionID).Msg("could not resolve institution name")
		return
	}
	link.InstitutionName = institution.Name
}

// RemoveLink implements LinkService.
//
// The provider item is removed first; local data is deleted only when the
// provider confirmed or no longer knows the item. A locked link has no
// usable token, so it is removed locally only. Any other link without a
// token in the session needs the provider to be unlocked first.
func (l *linkService) RemoveLink(ctx context.Context, linkID string) error {
	log := logger.FromContext(ctx)

	user, ok := l.session.User()
	if !ok {
		return ErrNotLoggedIn
	}

	link, err := l.links.GetLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("load link: %w", err)
	}
	if link.UserID != user.UserID {
		return ErrLinkNotFound
	}

	if token, ok := l.session.Token(linkID); ok {
		err = l.gateway.RemoveItem(ctx, token)
		switch {
		case err == nil:
		case errors.Is(err, adapter.ErrItemNotFound):
			log.Warn().Err(err).Str("link_id", linkID).Msg("item already gone at provider")
		default:
			log.Err(err).Str("func", "linkService.RemoveLink").Str("link_id", linkID).Msg("provider refused item removal")
			if errors.Is(err, adapter.ErrCredentialsNotSet) {
				return ErrProviderNotConfigured
			}
			return fmt.Errorf("%w: %w", ErrRemoteRemoveFailed, err)
		}
	} else if l.session.IsLocked(linkID) {
		log.Warn().Str("link_id", linkID).Msg("access token is locked, removing link locally only")
	} else {
		log.Warn().Str("link_id", linkID).Msg("no access token in session, refusing to orphan provider item")
		return ErrProviderNotConfigured
	}

	err = l.tx.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Transactions.DeleteTransactionsByLink(ctx, linkID); err != nil {
			return err
		}
		if err := repos.Accounts.DeleteAccountsByLink(ctx, linkID); err != nil {
			return err
		}
		return repos.Links.DeleteLink(ctx, linkID)
	})
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return ErrLinkNotFound
		}
		log.Err(err).Str("func", "linkService.RemoveLink").Str("link_id", linkID).Msg("local link removal failed")
		return fmt.Errorf("remove link data: %w", err)
	}

	l.session.Forget(linkID)

	log.Info().Str("link_id", linkID).Msg("link removed")
	return nil
}

// ListLinks implements LinkService.
func (l *linkService) ListLinks(ctx context.Context) ([]models.LinkSummary, error) {
	user, ok := l.session.User()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	links, err := l.links.ListLinks(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	summaries := make([]models.LinkSummary, 0, len(links))
	for _, link := range links {
		_, unlocked := l.session.Token(link.LinkID)
		summaries = append(summaries, toLinkSummary(link, unlocked))
	}
	return summaries, nil
}

// storedUser reloads the session profile so sealed credentials are current.
func (l *linkService) storedUser(ctx context.Context) (models.User, error) {
	sessionUser, ok := l.session.User()
	if !ok {
		return models.User{}, ErrNotLoggedIn
	}

	user, err := l.users.GetUser(ctx, sessionUser.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func toLinkSummary(link models.Link, unlocked bool) models.LinkSummary {
	return models.LinkSummary{
		LinkID:          link.LinkID,
		FriendlyName:    link.FriendlyName,
		InstitutionID:   link.InstitutionID,
		InstitutionName: link.InstitutionName,
		CreatedAt:       link.CreatedAt,
		Synced:          link.SyncCursor != "",
		Unlocked:        unlocked,
	}
}

// providerError maps a gateway precondition failure to
// ErrProviderNotConfigured and passes other errors through.
func providerError(err error) error {
	if errors.Is(err, adapter.ErrCredentialsNotSet) {
		return ErrProviderNotConfigured
	}
	return err
}
