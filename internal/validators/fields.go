// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict validation to a subset of rules.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFullName    = "full_name"
	FieldRole        = "role"
	FieldCompanyID   = "company_id"
	FieldOwnerID     = "owner_id"
	FieldJobID       = "job_id"
	FieldAssigneeID  = "assignee_id"
	FieldTaskID      = "task_id"
	FieldUserID      = "user_id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldLogoURL     = "logo_url"
	FieldAvatarURL   = "avatar_url"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldDeadline    = "deadline"
	FieldDates       = "dates"
	FieldMessage     = "message"
	FieldPage        = "page"
	FieldSize        = "size"
	FieldFileName    = "file_name"
	FieldContent     = "content"

	// FieldPasswordOptional accepts an empty password (user updates keep the
	// current one) but checks the length of a non-empty one.
	FieldPasswordOptional = "password_optional"
)

const (
	minPasswordLen    = 6
	maxPasswordLen    = 100
	minNameLen        = 2
	maxNameLen        = 255
	minTitleLen       = 3
	maxTitleLen       = 255
	maxAddressLen     = 500
	maxURLLen         = 500
	maxDescriptionLen = 5000
	maxMessageLen     = 5000
)
