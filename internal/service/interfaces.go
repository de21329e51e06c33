// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the console's use cases on top of the WorkHub
// adapters.
//
// Every mutating call validates its input first, then goes through the
// adapter. Failures coming back from the backend are *gateway.APIError
// values and are returned unchanged so the UI can show their Message.
// Validation failures wrap [ErrInvalidInput].
package service

import (
	"context"

	"github.com/MKhiriev/workhub-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager is the session store as seen by the services.
type SessionManager interface {
	Login(ctx context.Context, user models.User, token string) error
	Logout()
	User() (models.User, bool)
}

// AuthService signs users in and out.
type AuthService interface {
	// Login authenticates against the backend and stores the returned
	// session.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Logout drops the session locally. WorkHub tokens are stateless, so the
	// backend is not called.
	Logout()

	// CurrentUser returns the signed-in user.
	CurrentUser() (models.User, bool)
}

type CompanyService interface {
	List(ctx context.Context, page models.PageParams) (models.Page[models.Company], error)
	Get(ctx context.Context, id string) (models.Company, error)
	Create(ctx context.Context, req models.CompanyRequest) (models.Company, error)
	Update(ctx context.Context, id string, req models.CompanyRequest) (models.Company, error)
	Delete(ctx context.Context, id string) error
	AddUser(ctx context.Context, companyID string, req models.AddUserToCompanyRequest) error
}

// UserService manages accounts. List with an empty companyID returns users
// of every company.
type UserService interface {
	List(ctx context.Context, companyID string, page models.PageParams) (models.Page[models.User], error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, req models.UserRequest) (models.User, error)

	// Update keeps the current password when req.Password is empty.
	Update(ctx context.Context, id string, req models.UserRequest) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type JobService interface {
	List(ctx context.Context, filter models.JobFilter, page models.PageParams) (models.Page[models.Job], error)
	Get(ctx context.Context, id string) (models.Job, error)
	Create(ctx context.Context, req models.JobRequest) (models.Job, error)
	Update(ctx context.Context, id string, req models.JobRequest) (models.Job, error)
	UpdateStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	List(ctx context.Context, filter models.TaskFilter, page models.PageParams) (models.Page[models.Task], error)
	Get(ctx context.Context, id string) (models.Task, error)
	Create(ctx context.Context, req models.TaskRequest) (models.Task, error)
	Update(ctx context.Context, id string, req models.TaskRequest) (models.Task, error)
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error)
	Delete(ctx context.Context, id string) error
}

// CommentService manages task comments.
type CommentService interface {
	ListByTask(ctx context.Context, taskID string, page models.PageParams) (models.Page[models.TaskComment], error)
	ListByUser(ctx context.Context, userID string, page models.PageParams) (models.Page[models.TaskComment], error)

	// Add posts message on the task as the signed-in user.
	Add(ctx context.Context, taskID, message string) (models.TaskComment, error)
	Delete(ctx context.Context, id string) error
}

type FileService interface {
	Upload(ctx context.Context, file models.FileUpload) (models.FileUploadResponse, error)
	Delete(ctx context.Context, key string) error
}

// DashboardService aggregates the counters shown after sign-in.
type DashboardService interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
}

// AppInfoService exposes build metadata and the backend address.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
	BackendURL() string
}
