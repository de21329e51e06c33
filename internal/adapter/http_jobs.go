// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/models"
)

// jobListPath maps a filter to its listing endpoint:
//
//	company + status -> /jobs/company/{id}/status/{status}
//	company          -> /jobs/company/{id}
//	owner            -> /jobs/owner/{id}
//	status           -> /jobs/status/{status}
//	none             -> /jobs
func jobListPath(f models.JobFilter) (string, error) {
	switch {
	case f.OwnerID != "" && (f.CompanyID != "" || f.Status != ""):
		return "", fmt.Errorf("%w: owner with company or status", ErrUnsupportedFilter)
	case f.CompanyID != "" && f.Status != "":
		return resourcePath(jobEndpoint+"/company", f.CompanyID, "status", string(f.Status))
	case f.CompanyID != "":
		return resourcePath(jobEndpoint+"/company", f.CompanyID)
	case f.OwnerID != "":
		return resourcePath(jobEndpoint+"/owner", f.OwnerID)
	case f.Status != "":
		return resourcePath(jobEndpoint+"/status", string(f.Status))
	default:
		return jobEndpoint, nil
	}
}

func (h *httpAdapter) ListJobs(ctx context.Context, filter models.JobFilter, page models.PageParams) (models.Page[models.Job], error) {
	path, err := jobListPath(filter)
	if err != nil {
		return models.Page[models.Job]{}, err
	}
	return gateway.Get[models.Page[models.Job]](ctx, h.gw, path, page.Query())
}

func (h *httpAdapter) GetJob(ctx context.Context, id string) (models.Job, error) {
	path, err := resourcePath(jobEndpoint, id)
	if err != nil {
		return models.Job{}, err
	}
	return gateway.Get[models.Job](ctx, h.gw, path, nil)
}

func (h *httpAdapter) CreateJob(ctx context.Context, req models.JobRequest) (models.Job, error) {
	return gateway.Post[models.Job](ctx, h.gw, jobEndpoint, req)
}

func (h *httpAdapter) UpdateJob(ctx context.Context, id string, req models.JobRequest) (models.Job, error) {
	path, err := resourcePath(jobEndpoint, id)
	if err != nil {
		return models.Job{}, err
	}
	return gateway.Put[models.Job](ctx, h.gw, path, req)
}

func (h *httpAdapter) UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error) {
	path, err := resourcePath(jobEndpoint, id, "status")
	if err != nil {
		return models.Job{}, err
	}
	return gateway.Patch[models.Job](ctx, h.gw, path, models.JobStatusUpdateRequest{Status: status})
}

func (h *httpAdapter) DeleteJob(ctx context.Context, id string) error {
	path, err := resourcePath(jobEndpoint, id)
	if err != nil {
		return err
	}
	return gateway.Delete(ctx, h.gw, path)
}
