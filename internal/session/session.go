// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the signed-in user of the console.
//
// The token lives in memory and is mirrored to the local database so that a
// restart does not force a new login. [Store] satisfies both
// gateway.SessionProvider and gateway.TokenFallback.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/store"
	"github.com/MKhiriev/workhub-console/internal/utils"
	"github.com/MKhiriev/workhub-console/models"
)

var (
	// ErrNoSession is returned by [Store.Restore] when nothing was persisted.
	ErrNoSession = errors.New("no persisted session")

	// ErrSessionExpired is returned by [Store.Restore] when the persisted
	// token has expired. The stale copy is removed.
	ErrSessionExpired = errors.New("persisted session expired")

	// ErrEmptyToken is returned by [Store.Login] for a blank token.
	ErrEmptyToken = errors.New("empty session token")
)

// persistTimeout bounds repository calls made from methods without a
// context (Logout, PersistedToken).
const persistTimeout = 2 * time.Second

type Store struct {
	mu    sync.RWMutex
	token string
	user  models.User

	repo   store.SessionRepository
	logger *logger.Logger
	now    func() time.Time
}

// New returns an empty store. repo may be nil, in which case nothing is
// persisted.
func New(repo store.SessionRepository, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user and whether there is one.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.token != ""
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// HasAnyRole reports whether the signed-in user holds one of roles. It is
// false when signed out.
func (s *Store) HasAnyRole(roles ...models.UserRole) bool {
	user, ok := s.User()
	return ok && user.HasAnyRole(roles...)
}

// Expired reports whether the in-memory token has passed its "exp" claim.
// A signed-out store is never expired.
func (s *Store) Expired() bool {
	token := s.Token()
	return token != "" && utils.IsTokenExpired(token, s.now())
}

// Login replaces the session in memory and persists it. The in-memory
// session is set even when persisting fails.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	if s.repo == nil {
		return nil
	}

	err := s.repo.SaveSession(s.logger.WithContext(ctx), models.StoredSession{Token: token, User: user, SavedAt: s.now()})
	if err != nil {
		s.logger.Err(err).Str("func", "*Store.Login").Msg("failed to persist session")
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Logout clears the session in memory and removes the persisted copy. It is
// safe to call repeatedly.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = models.User{}
	s.mu.Unlock()

	if s.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(s.logger.WithContext(context.Background()), persistTimeout)
	defer cancel()
	if err := s.repo.DeleteSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "*Store.Logout").Msg("failed to delete persisted session")
	}
}

// Restore loads the persisted session into memory.
func (s *Store) Restore(ctx context.Context) error {
	if s.repo == nil {
		return ErrNoSession
	}

	ctx = s.logger.WithContext(ctx)
	stored, err := s.repo.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrNoSession
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if stored.Token == "" || utils.IsTokenExpired(stored.Token, s.now()) {
		if err := s.repo.DeleteSession(ctx); err != nil {
			s.logger.Err(err).Str("func", "*Store.Restore").Msg("failed to delete expired session")
		}
		return ErrSessionExpired
	}

	s.mu.Lock()
	s.token = stored.Token
	s.user = stored.User
	s.mu.Unlock()

	subject, _ := utils.TokenSubject(stored.Token)
	s.logger.Info().Str("user", stored.User.Email).Str("subject", subject).Msg("session restored")
	return nil
}

// PersistedToken returns the token kept in the local database, or "" when
// there is none or it cannot be read.
func (s *Store) PersistedToken() string {
	if s.repo == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(s.logger.WithContext(context.Background()), persistTimeout)
	defer cancel()

	stored, err := s.repo.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Err(err).Str("func", "*Store.PersistedToken").Msg("failed to read persisted session")
		}
		return ""
	}
	return stored.Token
}
