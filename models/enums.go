// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserRole is the authorization role of a WorkHub user.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleStaff   UserRole = "STAFF"
)

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobPending    JobStatus = "PENDING"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobCompleted  JobStatus = "COMPLETED"
)

// JobPriority ranks jobs for scheduling.
type JobPriority string

const (
	PriorityLow    JobPriority = "LOW"
	PriorityMedium JobPriority = "MEDIUM"
	PriorityHigh   JobPriority = "HIGH"
)

// TaskStatus is the board column a task is in.
type TaskStatus string

const (
	TaskTodo   TaskStatus = "TODO"
	TaskDoing  TaskStatus = "DOING"
	TaskReview TaskStatus = "REVIEW"
	TaskDone   TaskStatus = "DONE"
)

var (
	AllRoles         = []UserRole{RoleAdmin, RoleManager, RoleStaff}
	AllJobStatuses   = []JobStatus{JobPending, JobInProgress, JobCompleted}
	AllJobPriorities = []JobPriority{PriorityLow, PriorityMedium, PriorityHigh}
	AllTaskStatuses  = []TaskStatus{TaskTodo, TaskDoing, TaskReview, TaskDone}
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (s JobStatus) Valid() bool {
	for _, known := range AllJobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (p JobPriority) Valid() bool {
	for _, known := range AllJobPriorities {
		if p == known {
			return true
		}
	}
	return false
}

func (s TaskStatus) Valid() bool {
	for _, known := range AllTaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}
