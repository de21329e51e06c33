// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/models"
)

func (h *httpAdapter) ListComments(ctx context.Context, page models.PageParams) (models.Page[models.TaskComment], error) {
	return gateway.Get[models.Page[models.TaskComment]](ctx, h.gw, commentEndpoint, page.Query())
}

func (h *httpAdapter) ListCommentsByTask(ctx context.Context, taskID string, page models.PageParams) (models.Page[models.TaskComment], error) {
	path, err := resourcePath(commentEndpoint+"/task", taskID)
	if err != nil {
		return models.Page[models.TaskComment]{}, err
	}
	return gateway.Get[models.Page[models.TaskComment]](ctx, h.gw, path, page.Query())
}

func (h *httpAdapter) ListCommentsByUser(ctx context.Context, userID string, page models.PageParams) (models.Page[models.TaskComment], error) {
	path, err := resourcePath(commentEndpoint+"/user", userID)
	if err != nil {
		return models.Page[models.TaskComment]{}, err
	}
	return gateway.Get[models.Page[models.TaskComment]](ctx, h.gw, path, page.Query())
}

func (h *httpAdapter) GetComment(ctx context.Context, id string) (models.TaskComment, error) {
	path, err := resourcePath(commentEndpoint, id)
	if err != nil {
		return models.TaskComment{}, err
	}
	return gateway.Get[models.TaskComment](ctx, h.gw, path, nil)
}

func (h *httpAdapter) CreateComment(ctx context.Context, req models.TaskCommentRequest) (models.TaskComment, error) {
	return gateway.Post[models.TaskComment](ctx, h.gw, commentEndpoint, req)
}

func (h *httpAdapter) DeleteComment(ctx context.Context, id string) error {
	path, err := resourcePath(commentEndpoint, id)
	if err != nil {
		return err
	}
	return gateway.Delete(ctx, h.gw, path)
}
