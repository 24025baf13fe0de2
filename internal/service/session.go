// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/openleaf/models"
)

// Session holds the state of the single logged-in user: the profile and the
// decrypted access token of every unlocked link. Nothing in it is ever
// persisted; Close drops it all.
type Session struct {
	mu     sync.RWMutex
	user   *models.User
	tokens map[string]string
	locked map[string]struct{}

	now func() time.Time
}

// NewSession returns a closed session.
func NewSession() *Session {
	return &Session{
		tokens: make(map[string]string),
		locked: make(map[string]struct{}),
		now:    time.Now,
	}
}

// Open starts a session for user, discarding any previous state.
func (s *Session) Open(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.tokens = make(map[string]string)
	s.locked = make(map[string]struct{})
}

// Close drops the user and every decrypted token.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.tokens = make(map[string]string)
	s.locked = make(map[string]struct{})
}

// User returns the session profile. It reports false when no session is
// open or the session expiry has passed.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	if !s.user.SessionExpiresAt.IsZero() && s.now().After(s.user.SessionExpiresAt) {
		return models.User{}, false
	}
	return *s.user, true
}

// SetToken registers the decrypted access token of a link.
func (s *Session) SetToken(linkID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[linkID] = token
	delete(s.locked, linkID)
}

// Token returns the decrypted access token of a link.
func (s *Session) Token(linkID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[linkID]
	return token, ok
}

// MarkLocked flags a link whose token could not be decrypted.
func (s *Session) MarkLocked(linkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, linkID)
	s.locked[linkID] = struct{}{}
}

// IsLocked reports whether unlocking failed for the link.
func (s *Session) IsLocked(linkID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.locked[linkID]
	return ok
}

// Forget removes every trace of a link from the session.
func (s *Session) Forget(linkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, linkID)
	delete(s.locked, linkID)
}

// ClearTokens drops all decrypted tokens but keeps the session open.
func (s *Session) ClearTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = make(map[string]string)
	s.locked = make(map[string]struct{})
}
