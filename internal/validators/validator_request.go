// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/workhub-console/models"
)

// dateLayouts are the formats the backend accepts for LocalDateTime fields.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.CompanyRequest:
		return v.validateCompany(value, fields...)
	case *models.CompanyRequest:
		return v.validateCompany(*value, fields...)

	case models.AddUserToCompanyRequest:
		return v.validateAddUserToCompany(value, fields...)
	case *models.AddUserToCompanyRequest:
		return v.validateAddUserToCompany(*value, fields...)

	case models.UserRequest:
		return v.validateUser(value, fields...)
	case *models.UserRequest:
		return v.validateUser(*value, fields...)

	case models.JobRequest:
		return v.validateJob(value, fields...)
	case *models.JobRequest:
		return v.validateJob(*value, fields...)

	case models.JobStatusUpdateRequest:
		return v.validateJobStatus(value, fields...)

	case models.TaskRequest:
		return v.validateTask(value, fields...)
	case *models.TaskRequest:
		return v.validateTask(*value, fields...)

	case models.TaskStatusUpdateRequest:
		return v.validateTaskStatus(value, fields...)

	case models.TaskCommentRequest:
		return v.validateComment(value, fields...)
	case *models.TaskCommentRequest:
		return v.validateComment(*value, fields...)

	case models.PageParams:
		return v.validatePage(value, fields...)

	case models.FileUpload:
		return v.validateFile(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			// login only needs a non-empty password, length rules apply on
			// registration
			if req.Password == "" {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if !lenBetween(req.FullName, minNameLen, maxNameLen) {
				return ErrInvalidFullName
			}
		case FieldEmail:
			if err := checkEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if !lenBetween(req.Password, minPasswordLen, maxPasswordLen) {
				return ErrInvalidPassword
			}
		case FieldRole:
			// role is optional on registration, the server defaults it
			if req.Role != "" && !req.Role.Valid() {
				return ErrInvalidRole
			}
		case FieldCompanyID:
			if isBlank(req.CompanyID) {
				return ErrEmptyCompanyID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateCompany(req models.CompanyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAddress, FieldLogoURL}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !lenBetween(req.Name, minNameLen, maxNameLen) {
				return ErrInvalidCompanyName
			}
		case FieldAddress:
			if !lenBetween(req.Address, 1, maxAddressLen) {
				return ErrInvalidAddress
			}
		case FieldLogoURL:
			if utf8.RuneCountInString(req.LogoURL) > maxURLLen {
				return ErrURLTooLong
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateAddUserToCompany(req models.AddUserToCompanyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(req.UserID) {
				return ErrEmptyUserID
			}
		case FieldRole:
			if req.Role != "" && !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateUser(req models.UserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyID, FieldFullName, FieldEmail, FieldPassword, FieldAvatarURL, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyID:
			if isBlank(req.CompanyID) {
				return ErrEmptyCompanyID
			}
		case FieldFullName:
			if !lenBetween(req.FullName, minNameLen, maxNameLen) {
				return ErrInvalidFullName
			}
		case FieldEmail:
			if err := checkEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if !lenBetween(req.Password, minPasswordLen, maxPasswordLen) {
				return ErrInvalidPassword
			}
		case FieldPasswordOptional:
			if req.Password != "" && !lenBetween(req.Password, minPasswordLen, maxPasswordLen) {
				return ErrInvalidPassword
			}
		case FieldAvatarURL:
			if utf8.RuneCountInString(req.AvatarURL) > maxURLLen {
				return ErrURLTooLong
			}
		case FieldRole:
			if !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateJob(req models.JobRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyID, FieldOwnerID, FieldTitle, FieldDescription, FieldStatus, FieldPriority, FieldDeadline}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyID:
			if isBlank(req.CompanyID) {
				return ErrEmptyCompanyID
			}
		case FieldOwnerID:
			if isBlank(req.OwnerID) {
				return ErrEmptyOwnerID
			}
		case FieldTitle:
			if !lenBetween(req.Title, minTitleLen, maxTitleLen) {
				return ErrInvalidTitle
			}
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) > maxDescriptionLen {
				return ErrDescriptionTooLong
			}
		case FieldStatus:
			if !req.Status.Valid() {
				return ErrInvalidJobStatus
			}
		case FieldPriority:
			if !req.Priority.Valid() {
				return ErrInvalidPriority
			}
		case FieldDeadline:
			if _, err := parseOptionalDate(req.Deadline); err != nil {
				return fmt.Errorf("deadline: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateJobStatus(req models.JobStatusUpdateRequest, fields ...string) error {
	for _, f := range defaultFields(fields, FieldStatus) {
		if f != FieldStatus {
			return ErrUnknownField
		}
		if !req.Status.Valid() {
			return ErrInvalidJobStatus
		}
	}
	return nil
}

func (v *RequestValidator) validateTask(req models.TaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyID, FieldJobID, FieldAssigneeID, FieldTitle, FieldDescription, FieldStatus, FieldDates}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyID:
			if isBlank(req.CompanyID) {
				return ErrEmptyCompanyID
			}
		case FieldJobID:
			if isBlank(req.JobID) {
				return ErrEmptyJobID
			}
		case FieldAssigneeID:
			if isBlank(req.AssigneeID) {
				return ErrEmptyAssigneeID
			}
		case FieldTitle:
			if !lenBetween(req.Title, minTitleLen, maxTitleLen) {
				return ErrInvalidTitle
			}
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) > maxDescriptionLen {
				return ErrDescriptionTooLong
			}
		case FieldStatus:
			if !req.Status.Valid() {
				return ErrInvalidTaskStatus
			}
		case FieldDates:
			if err := checkDateRange(req.StartDate, req.DueDate); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateTaskStatus(req models.TaskStatusUpdateRequest, fields ...string) error {
	for _, f := range defaultFields(fields, FieldStatus) {
		if f != FieldStatus {
			return ErrUnknownField
		}
		if !req.Status.Valid() {
			return ErrInvalidTaskStatus
		}
	}
	return nil
}

func (v *RequestValidator) validateComment(req models.TaskCommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTaskID, FieldUserID, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldTaskID:
			if isBlank(req.TaskID) {
				return ErrEmptyTaskID
			}
		case FieldUserID:
			if isBlank(req.UserID) {
				return ErrEmptyUserID
			}
		case FieldMessage:
			if isBlank(req.Message) || utf8.RuneCountInString(req.Message) > maxMessageLen {
				return ErrInvalidMessage
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validatePage(p models.PageParams, fields ...string) error {
	for _, f := range defaultFields(fields, FieldPage, FieldSize) {
		switch f {
		case FieldPage:
			if p.Page < 0 {
				return ErrInvalidPage
			}
		case FieldSize:
			// zero means "server default"
			if p.Size < 0 || p.Size > models.MaxPageSize {
				return ErrInvalidPageSize
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateFile(file models.FileUpload, fields ...string) error {
	for _, f := range defaultFields(fields, FieldFileName, FieldContent) {
		switch f {
		case FieldFileName:
			if isBlank(file.FileName) {
				return ErrEmptyFileName
			}
		case FieldContent:
			if len(file.Content) == 0 {
				return ErrEmptyFile
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lenBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= minLen && n <= maxLen
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || utf8.RuneCountInString(email) > maxNameLen {
		return ErrInvalidEmail
	}
	return nil
}

// parseOptionalDate returns the zero time for an empty value.
func parseOptionalDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func checkDateRange(start, due string) error {
	startAt, err := parseOptionalDate(start)
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	dueAt, err := parseOptionalDate(due)
	if err != nil {
		return fmt.Errorf("due date: %w", err)
	}
	if !startAt.IsZero() && !dueAt.IsZero() && dueAt.Before(startAt) {
		return ErrDueBeforeStart
	}
	return nil
}
