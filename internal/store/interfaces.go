// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/workhub-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the single authenticated session of the console
// so that it survives restarts.
type SessionRepository interface {
	// SaveSession replaces the stored session.
	SaveSession(ctx context.Context, session models.StoredSession) error
	// GetSession returns [ErrSessionNotFound] when nothing is stored.
	GetSession(ctx context.Context) (models.StoredSession, error)
	// DeleteSession is a no-op when nothing is stored.
	DeleteSession(ctx context.Context) error
}
