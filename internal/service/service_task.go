// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/validators"
	"github.com/MKhiriev/workhub-console/models"
)

type taskService struct {
	adapter   adapter.TaskAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewTaskService(a adapter.TaskAdapter, v validators.Validator, logger *logger.Logger) TaskService {
	return &taskService{adapter: a, validator: v, logger: logger}
}

func (s *taskService) List(ctx context.Context, filter models.TaskFilter, page models.PageParams) (models.Page[models.Task], error) {
	if err := validate(ctx, s.validator, page); err != nil {
		return models.Page[models.Task]{}, err
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return models.Page[models.Task]{}, fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrInvalidTaskStatus)
	}
	return s.adapter.ListTasks(ctx, filter, page)
}

func (s *taskService) Get(ctx context.Context, id string) (models.Task, error) {
	return s.adapter.GetTask(ctx, id)
}

func (s *taskService) Create(ctx context.Context, req models.TaskRequest) (models.Task, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Task{}, err
	}

	task, err := s.adapter.CreateTask(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*taskService.Create").Msg("create task failed")
		return models.Task{}, err
	}

	s.logger.Info().Str("task_id", task.ID).Msg("task created")
	return task, nil
}

func (s *taskService) Update(ctx context.Context, id string, req models.TaskRequest) (models.Task, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Task{}, err
	}

	task, err := s.adapter.UpdateTask(ctx, id, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*taskService.Update").Str("task_id", id).Msg("update task failed")
		return models.Task{}, err
	}
	return task, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error) {
	if err := validate(ctx, s.validator, models.TaskStatusUpdateRequest{Status: status}); err != nil {
		return models.Task{}, err
	}

	task, err := s.adapter.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		s.logger.Err(err).Str("func", "*taskService.UpdateStatus").Str("task_id", id).Msg("update task status failed")
		return models.Task{}, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteTask(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*taskService.Delete").Str("task_id", id).Msg("delete task failed")
		return err
	}
	return nil
}
