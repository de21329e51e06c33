// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/validators"
	"github.com/MKhiriev/workhub-console/models"
)

// userUpdateFields is the rule set for updates: the password may be left
// empty.
var userUpdateFields = []string{
	validators.FieldCompanyID,
	validators.FieldFullName,
	validators.FieldEmail,
	validators.FieldPasswordOptional,
	validators.FieldAvatarURL,
	validators.FieldRole,
}

type userService struct {
	adapter   adapter.UserAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewUserService(a adapter.UserAdapter, v validators.Validator, logger *logger.Logger) UserService {
	return &userService{adapter: a, validator: v, logger: logger}
}

func (s *userService) List(ctx context.Context, companyID string, page models.PageParams) (models.Page[models.User], error) {
	if err := validate(ctx, s.validator, page); err != nil {
		return models.Page[models.User]{}, err
	}
	if companyID == "" {
		return s.adapter.ListUsers(ctx, page)
	}
	return s.adapter.ListUsersByCompany(ctx, companyID, page)
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	return s.adapter.GetUser(ctx, id)
}

func (s *userService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}

	user, err := s.adapter.CreateUser(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*userService.Create").Msg("create user failed")
		return models.User{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, req models.UserRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req, userUpdateFields...); err != nil {
		return models.User{}, err
	}

	user, err := s.adapter.UpdateUser(ctx, id, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*userService.Update").Str("user_id", id).Msg("update user failed")
		return models.User{}, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteUser(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*userService.Delete").Str("user_id", id).Msg("delete user failed")
		return err
	}
	return nil
}
