// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Task is a unit of work inside a job, assigned to a single user.
type Task struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"companyId"`
	CompanyName  string     `json:"companyName,omitempty"`
	JobID        string     `json:"jobId"`
	JobTitle     string     `json:"jobTitle,omitempty"`
	AssigneeID   string     `json:"assigneeId"`
	AssigneeName string     `json:"assigneeName,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       TaskStatus `json:"status"`
	StartDate    string     `json:"startDate,omitempty"`
	DueDate      string     `json:"dueDate,omitempty"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt,omitempty"`
}

// TaskRequest is the body of create and update calls for tasks.
type TaskRequest struct {
	CompanyID   string     `json:"companyId"`
	JobID       string     `json:"jobId"`
	AssigneeID  string     `json:"assigneeId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	StartDate   string     `json:"startDate,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
}

// TaskStatusUpdateRequest moves a task to another board column.
type TaskStatusUpdateRequest struct {
	Status TaskStatus `json:"status"`
}

// TaskFilter narrows task listings. Zero fields are ignored.
type TaskFilter struct {
	CompanyID  string
	JobID      string
	AssigneeID string
	Status     TaskStatus
}

// TaskComment is a message left on a task.
type TaskComment struct {
	ID        string `json:"id"`
	TaskID    string `json:"taskId"`
	TaskTitle string `json:"taskTitle,omitempty"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// TaskCommentRequest is the body of a create-comment call.
type TaskCommentRequest struct {
	TaskID  string `json:"taskId"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}
