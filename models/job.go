// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Job is a work order owned by a user of a company.
type Job struct {
	ID          string      `json:"id"`
	CompanyID   string      `json:"companyId"`
	CompanyName string      `json:"companyName,omitempty"`
	OwnerID     string      `json:"ownerId"`
	OwnerName   string      `json:"ownerName,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      JobStatus   `json:"status"`
	Priority    JobPriority `json:"priority"`
	Deadline    string      `json:"deadline,omitempty"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// JobRequest is the body of create and update calls for jobs.
type JobRequest struct {
	CompanyID   string      `json:"companyId"`
	OwnerID     string      `json:"ownerId"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      JobStatus   `json:"status"`
	Priority    JobPriority `json:"priority"`
	Deadline    string      `json:"deadline,omitempty"`
}

// JobStatusUpdateRequest moves a job to another status.
type JobStatusUpdateRequest struct {
	Status JobStatus `json:"status"`
}

// JobFilter narrows job listings. Zero fields are ignored.
type JobFilter struct {
	CompanyID string
	OwnerID   string
	Status    JobStatus
}
