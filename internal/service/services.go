// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/config"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/validators"
	"github.com/MKhiriev/workhub-console/models"
)

type Services struct {
	AuthService      AuthService
	CompanyService   CompanyService
	UserService      UserService
	JobService       JobService
	TaskService      TaskService
	CommentService   CommentService
	FileService      FileService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

func NewServices(
	adapters *adapter.Adapters,
	sess SessionManager,
	buildInfo models.AppBuildInfo,
	gwCfg config.ClientGateway,
	logger *logger.Logger,
) (*Services, error) {
	if adapters == nil || sess == nil {
		return nil, ErrNilDependency
	}

	v := validators.NewRequestValidator()

	return &Services{
		AuthService:      NewAuthService(adapters.Auth, sess, v, logger),
		CompanyService:   NewCompanyService(adapters.Companies, v, logger),
		UserService:      NewUserService(adapters.Users, v, logger),
		JobService:       NewJobService(adapters.Jobs, v, logger),
		TaskService:      NewTaskService(adapters.Tasks, v, logger),
		CommentService:   NewCommentService(adapters.Comments, sess, v, logger),
		FileService:      NewFileService(adapters.Files, v, logger),
		DashboardService: NewDashboardService(adapters, sess, logger),
		AppInfoService:   NewAppInfoService(buildInfo, gwCfg),
	}, nil
}

// validate runs v and tags a failure with [ErrInvalidInput].
func validate(ctx context.Context, v validators.Validator, obj any, fields ...string) error {
	if err := v.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
