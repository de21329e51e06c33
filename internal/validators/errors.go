// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email must be valid")
	ErrInvalidPassword    = errors.New("password must be between 6 and 100 characters")
	ErrInvalidFullName    = errors.New("full name must be between 2 and 255 characters")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmptyCompanyID     = errors.New("company id is required")
	ErrEmptyOwnerID       = errors.New("owner id is required")
	ErrEmptyJobID         = errors.New("job id is required")
	ErrEmptyAssigneeID    = errors.New("assignee id is required")
	ErrEmptyTaskID        = errors.New("task id is required")
	ErrEmptyUserID        = errors.New("user id is required")
	ErrInvalidCompanyName = errors.New("company name must be between 2 and 255 characters")
	ErrInvalidAddress     = errors.New("address is required and must not exceed 500 characters")
	ErrURLTooLong         = errors.New("url must not exceed 500 characters")
	ErrInvalidTitle       = errors.New("title must be between 3 and 255 characters")
	ErrDescriptionTooLong = errors.New("description must not exceed 5000 characters")
	ErrInvalidJobStatus   = errors.New("invalid job status")
	ErrInvalidPriority    = errors.New("invalid job priority")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrInvalidDate        = errors.New("invalid date")
	ErrDueBeforeStart     = errors.New("due date must not be before start date")
	ErrInvalidMessage     = errors.New("message must be between 1 and 5000 characters")
	ErrInvalidPage        = errors.New("page must not be negative")
	ErrInvalidPageSize    = errors.New("page size must be between 1 and 100")
	ErrEmptyFileName      = errors.New("file name is required")
	ErrEmptyFile          = errors.New("file is empty")
)
