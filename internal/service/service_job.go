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

type jobService struct {
	adapter   adapter.JobAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewJobService(a adapter.JobAdapter, v validators.Validator, logger *logger.Logger) JobService {
	return &jobService{adapter: a, validator: v, logger: logger}
}

func (s *jobService) List(ctx context.Context, filter models.JobFilter, page models.PageParams) (models.Page[models.Job], error) {
	if err := validate(ctx, s.validator, page); err != nil {
		return models.Page[models.Job]{}, err
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return models.Page[models.Job]{}, fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrInvalidJobStatus)
	}
	return s.adapter.ListJobs(ctx, filter, page)
}

func (s *jobService) Get(ctx context.Context, id string) (models.Job, error) {
	return s.adapter.GetJob(ctx, id)
}

func (s *jobService) Create(ctx context.Context, req models.JobRequest) (models.Job, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Job{}, err
	}

	job, err := s.adapter.CreateJob(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*jobService.Create").Msg("create job failed")
		return models.Job{}, err
	}

	s.logger.Info().Str("job_id", job.ID).Msg("job created")
	return job, nil
}

func (s *jobService) Update(ctx context.Context, id string, req models.JobRequest) (models.Job, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Job{}, err
	}

	job, err := s.adapter.UpdateJob(ctx, id, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*jobService.Update").Str("job_id", id).Msg("update job failed")
		return models.Job{}, err
	}
	return job, nil
}

func (s *jobService) UpdateStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error) {
	if err := validate(ctx, s.validator, models.JobStatusUpdateRequest{Status: status}); err != nil {
		return models.Job{}, err
	}

	job, err := s.adapter.UpdateJobStatus(ctx, id, status)
	if err != nil {
		s.logger.Err(err).Str("func", "*jobService.UpdateStatus").Str("job_id", id).Msg("update job status failed")
		return models.Job{}, err
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteJob(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*jobService.Delete").Str("job_id", id).Msg("delete job failed")
		return err
	}
	return nil
}
