// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

var linkColumns = []string{
	"link_id",
	"user_id",
	"item_id",
	"friendly_name",
	"encrypted_access_token",
	"institution_id",
	"institution_name",
	"sync_cursor",
	"created_at",
}

type linkRepository struct {
	querier
}

// AddLink implements [LinkRepository].
func (r *linkRepository) AddLink(ctx context.Context, link models.Link) error {
	log := logger.FromContext(ctx)

	token, err := link.EncryptedAccessToken.Encode()
	if err != nil {
		return storageErr("encode access token", err)
	}

	query, args, err := r.sb.Insert("links").
		Columns(linkColumns...).
		Values(
			link.LinkID,
			link.UserID,
			link.ItemID,
			link.FriendlyName,
			token,
			link.InstitutionID,
			link.InstitutionName,
			link.SyncCursor,
			link.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.classifier.Classify(err) == Conflict {
			return ErrLinkAlreadyExists
		}
		log.Err(err).Str("func", "linkRepository.AddLink").Str("link_id", link.LinkID).Msg("failed to insert link")
		return storageErr("failed to add link", err)
	}

	return nil
}

// UpdateLink implements [LinkRepository]. The sync cursor is not touched;
// it changes only through SetCursor.
func (r *linkRepository) UpdateLink(ctx context.Context, link models.Link) error {
	log := logger.FromContext(ctx)

	token, err := link.EncryptedAccessToken.Encode()
	if err != nil {
		return storageErr("encode access token", err)
	}

	query, args, err := r.sb.Update("links").
		SetMap(map[string]any{
			"item_id":                link.ItemID,
			"friendly_name":          link.FriendlyName,
			"encrypted_access_token": token,
			"institution_id":         link.InstitutionID,
			"institution_name":       link.InstitutionName,
		}).
		Where(sq.Eq{"link_id": link.LinkID}).
		ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "linkRepository.UpdateLink").Str("link_id", link.LinkID).Msg("failed to update link")
		return storageErr("failed to update link", err)
	}

	return expectAffected(res, ErrLinkNotFound)
}

// GetLink implements [LinkRepository].
func (r *linkRepository) GetLink(ctx context.Context, linkID string) (models.Link, error) {
	query, args, err := r.sb.Select(linkColumns...).From("links").Where(sq.Eq{"link_id": linkID}).ToSql()
	if err != nil {
		return models.Link{}, storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	link, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Link{}, ErrLinkNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "linkRepository.GetLink").Str("link_id", linkID).Msg("failed to query link")
		return models.Link{}, storageErr("failed to query link", err)
	}

	return link, nil
}

// ListLinks implements [LinkRepository]. Links are ordered by creation time.
func (r *linkRepository) ListLinks(ctx context.Context, userID string) ([]models.Link, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(linkColumns...).
		From("links").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "link_id").
		ToSql()
	if err != nil {
		return nil, storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "linkRepository.ListLinks").Str("user_id", userID).Msg("failed to query links")
		return nil, storageErr("failed to query links", err)
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			log.Err(err).Str("func", "linkRepository.ListLinks").Msg("failed to scan link row")
			return nil, storageErr(ErrScanningRow.Error(), err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrScanningRow.Error(), err)
	}

	return links, nil
}

// DeleteLink implements [LinkRepository].
func (r *linkRepository) DeleteLink(ctx context.Context, linkID string) error {
	query, args, err := r.sb.Delete("links").Where(sq.Eq{"link_id": linkID}).ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "linkRepository.DeleteLink").Str("link_id", linkID).Msg("failed to delete link")
		return storageErr("failed to delete link", err)
	}

	return expectAffected(res, ErrLinkNotFound)
}

// GetCursor implements [LinkRepository].
func (r *linkRepository) GetCursor(ctx context.Context, linkID string) (string, error) {
	query, args, err := r.sb.Select("sync_cursor").From("links").Where(sq.Eq{"link_id": linkID}).ToSql()
	if err != nil {
		return "", storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	var cursor string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLinkNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "linkRepository.GetCursor").Str("link_id", linkID).Msg("failed to read cursor")
		return "", storageErr("failed to read cursor", err)
	}

	return cursor, nil
}

// SetCursor implements [LinkRepository].
func (r *linkRepository) SetCursor(ctx context.Context, linkID, cursor string) error {
	query, args, err := r.sb.Update("links").
		Set("sync_cursor", cursor).
		Where(sq.Eq{"link_id": linkID}).
		ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "linkRepository.SetCursor").Str("link_id", linkID).Msg("failed to write cursor")
		return storageErr("failed to write cursor", err)
	}

	return expectAffected(res, ErrLinkNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (models.Link, error) {
	var (
		link  models.Link
		token string
	)
	err := row.Scan(
		&link.LinkID,
		&link.UserID,
		&link.ItemID,
		&link.FriendlyName,
		&token,
		&link.InstitutionID,
		&link.InstitutionName,
		&link.SyncCursor,
		&link.CreatedAt,
	)
	if err != nil {
		return models.Link{}, err
	}

	link.EncryptedAccessToken, err = models.DecodeEncryptedSecret(token)
	if err != nil {
		return models.Link{}, err
	}

	return link, nil
}
