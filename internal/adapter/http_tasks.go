// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/models"
)

// taskListPath maps a filter to its listing endpoint. Only one scope
// (company, job or assignee) may be set; status combines with job or
// assignee.
func taskListPath(f models.TaskFilter) (string, error) {
	scopes := 0
	for _, s := range []string{f.CompanyID, f.JobID, f.AssigneeID} {
		if s != "" {
			scopes++
		}
	}
	if scopes > 1 {
		return "", fmt.Errorf("%w: more than one task scope", ErrUnsupportedFilter)
	}

	switch {
	case f.CompanyID != "" && f.Status != "":
		return "", fmt.Errorf("%w: company with status", ErrUnsupportedFilter)
	case f.CompanyID != "":
		return resourcePath(taskEndpoint+"/company", f.CompanyID)
	case f.JobID != "" && f.Status != "":
		return resourcePath(taskEndpoint+"/job", f.JobID, "status", string(f.Status))
	case f.JobID != "":
		return resourcePath(taskEndpoint+"/job", f.JobID)
	case f.AssigneeID != "" && f.Status != "":
		return resourcePath(taskEndpoint+"/assignee", f.AssigneeID, "status", string(f.Status))
	case f.AssigneeID != "":
		return resourcePath(taskEndpoint+"/assignee", f.AssigneeID)
	case f.Status != "":
		return resourcePath(taskEndpoint+"/status", string(f.Status))
	default:
		return taskEndpoint, nil
	}
}

func (h *httpAdapter) ListTasks(ctx context.Context, filter models.TaskFilter, page models.PageParams) (models.Page[models.Task], error) {
	path, err := taskListPath(filter)
	if err != nil {
		return models.Page[models.Task]{}, err
	}
	return gateway.Get[models.Page[models.Task]](ctx, h.gw, path, page.Query())
}

func (h *httpAdapter) GetTask(ctx context.Context, id string) (models.Task, error) {
	path, err := resourcePath(taskEndpoint, id)
	if err != nil {
		return models.Task{}, err
	}
	return gateway.Get[models.Task](ctx, h.gw, path, nil)
}

func (h *httpAdapter) CreateTask(ctx context.Context, req models.TaskRequest) (models.Task, error) {
	return gateway.Post[models.Task](ctx, h.gw, taskEndpoint, req)
}

func (h *httpAdapter) UpdateTask(ctx context.Context, id string, req models.TaskRequest) (models.Task, error) {
	path, err := resourcePath(taskEndpoint, id)
	if err != nil {
		return models.Task{}, err
	}
	return gateway.Put[models.Task](ctx, h.gw, path, req)
}

func (h *httpAdapter) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error) {
	path, err := resourcePath(taskEndpoint, id, "status")
	if err != nil {
		return models.Task{}, err
	}
	return gateway.Patch[models.Task](ctx, h.gw, path, models.TaskStatusUpdateRequest{Status: status})
}

func (h *httpAdapter) DeleteTask(ctx context.Context, id string) error {
	path, err := resourcePath(taskEndpoint, id)
	if err != nil {
		return err
	}
	return gateway.Delete(ctx, h.gw, path)
}
