// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/session"
	"github.com/MKhiriev/workhub-console/internal/validators"
	"github.com/MKhiriev/workhub-console/models"
)

type authService struct {
	adapter   adapter.AuthAdapter
	session   SessionManager
	validator validators.Validator
	logger    *logger.Logger
}

func NewAuthService(a adapter.AuthAdapter, sess SessionManager, v validators.Validator, logger *logger.Logger) AuthService {
	return &authService{adapter: a, session: sess, validator: v, logger: logger}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}

	resp, err := s.adapter.Login(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*authService.Login").Msg("login failed")
		return models.User{}, err
	}

	if err = s.startSession(ctx, resp); err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("user", resp.User.Email).Msg("signed in")
	return resp.User, nil
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}

	resp, err := s.adapter.Register(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*authService.Register").Msg("registration failed")
		return models.User{}, err
	}

	if err = s.startSession(ctx, resp); err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("user", resp.User.Email).Msg("registered")
	return resp.User, nil
}

// startSession stores the session. A failure to persist it locally is not
// fatal: the user stays signed in until the console exits.
func (s *authService) startSession(ctx context.Context, resp models.AuthResponse) error {
	err := s.session.Login(ctx, resp.User, resp.Token)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrEmptyToken):
		return fmt.Errorf("start session: %w", err)
	default:
		s.logger.Warn().Err(err).Str("func", "*authService.startSession").Msg("session kept in memory only")
		return nil
	}
}

func (s *authService) Logout() {
	s.session.Logout()
	s.logger.Info().Msg("signed out")
}

func (s *authService) CurrentUser() (models.User, bool) {
	return s.session.User()
}
