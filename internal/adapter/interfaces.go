// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter exposes the WorkHub REST API as typed Go calls.
//
// Every call is routed through a [gateway.Doer], so authentication, envelope
// unwrapping and error normalisation happen in one place; the adapters only
// know paths, verbs and payload types. Errors returned here are the
// gateway's *gateway.APIError values, except for the argument checks in
// errors.go which fail before anything is sent.
package adapter

import (
	"context"

	"github.com/MKhiriev/workhub-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter talks to /auth.
type AuthAdapter interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
}

// CompanyAdapter talks to /companies.
type CompanyAdapter interface {
	ListCompanies(ctx context.Context, page models.PageParams) (models.Page[models.Company], error)
	GetCompany(ctx context.Context, id string) (models.Company, error)
	CreateCompany(ctx context.Context, req models.CompanyRequest) (models.Company, error)
	UpdateCompany(ctx context.Context, id string, req models.CompanyRequest) (models.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	AddUserToCompany(ctx context.Context, companyID string, req models.AddUserToCompanyRequest) error
}

// UserAdapter talks to /users.
type UserAdapter interface {
	ListUsers(ctx context.Context, page models.PageParams) (models.Page[models.User], error)
	ListUsersByCompany(ctx context.Context, companyID string, page models.PageParams) (models.Page[models.User], error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, req models.UserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// JobAdapter talks to /jobs. ListJobs picks the listing endpoint matching
// the filter.
type JobAdapter interface {
	ListJobs(ctx context.Context, filter models.JobFilter, page models.PageParams) (models.Page[models.Job], error)
	GetJob(ctx context.Context, id string) (models.Job, error)
	CreateJob(ctx context.Context, req models.JobRequest) (models.Job, error)
	UpdateJob(ctx context.Context, id string, req models.JobRequest) (models.Job, error)
	UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

// TaskAdapter talks to /tasks. ListTasks picks the listing endpoint matching
// the filter.
type TaskAdapter interface {
	ListTasks(ctx context.Context, filter models.TaskFilter, page models.PageParams) (models.Page[models.Task], error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	CreateTask(ctx context.Context, req models.TaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, id string, req models.TaskRequest) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// CommentAdapter talks to /task-comments. Comments cannot be edited.
type CommentAdapter interface {
	ListComments(ctx context.Context, page models.PageParams) (models.Page[models.TaskComment], error)
	ListCommentsByTask(ctx context.Context, taskID string, page models.PageParams) (models.Page[models.TaskComment], error)
	ListCommentsByUser(ctx context.Context, userID string, page models.PageParams) (models.Page[models.TaskComment], error)
	GetComment(ctx context.Context, id string) (models.TaskComment, error)
	CreateComment(ctx context.Context, req models.TaskCommentRequest) (models.TaskComment, error)
	DeleteComment(ctx context.Context, id string) error
}

// FileAdapter talks to /files.
type FileAdapter interface {
	UploadFile(ctx context.Context, file models.FileUpload) (models.FileUploadResponse, error)
	DeleteFile(ctx context.Context, key string) error
}
