// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/models"
)

const (
	sessionTable = "session"
	sessionRowID = 1
)

// sessionRepository is the SQLite-backed [SessionRepository]. The table holds
// at most one row with id = 1.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// log prefers the logger carried by ctx and falls back to the repository's own.
func (r *sessionRepository) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return r.logger
}

// SaveSession upserts the session row. A zero SavedAt is replaced with the
// current time.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.StoredSession) error {
	log := r.log(ctx)

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error encoding user")
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	savedAt := session.SavedAt
	if savedAt.IsZero() {
		savedAt = r.now()
	}

	query, args, err := psql.Insert(sessionTable).
		Columns("id", "token", "user_json", "saved_at").
		Values(sessionRowID, session.Token, string(userJSON), savedAt.UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, user_json = excluded.user_json, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.StoredSession, error) {
	log := r.log(ctx)

	query, args, err := psql.Select("token", "user_json", "saved_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session  models.StoredSession
		userJSON string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.Token, &userJSON, &session.SavedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredSession{}, ErrSessionNotFound
	case err != nil:
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error scanning session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(userJSON), &session.User); err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error decoding user")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := psql.Delete(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.log(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
