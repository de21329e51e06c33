// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/models"
)

func (h *httpAdapter) ListUsers(ctx context.Context, page models.PageParams) (models.Page[models.User], error) {
	return gateway.Get[models.Page[models.User]](ctx, h.gw, userEndpoint, page.Query())
}

func (h *httpAdapter) ListUsersByCompany(ctx context.Context, companyID string, page models.PageParams) (models.Page[models.User], error) {
	path, err := resourcePath(userEndpoint+"/company", companyID)
	if err != nil {
		return models.Page[models.User]{}, err
	}
	return gateway.Get[models.Page[models.User]](ctx, h.gw, path, page.Query())
}

func (h *httpAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	path, err := resourcePath(userEndpoint, id)
	if err != nil {
		return models.User{}, err
	}
	return gateway.Get[models.User](ctx, h.gw, path, nil)
}

func (h *httpAdapter) CreateUser(ctx context.Context, req models.UserRequest) (models.User, error) {
	return gateway.Post[models.User](ctx, h.gw, userEndpoint, req)
}

func (h *httpAdapter) UpdateUser(ctx context.Context, id string, req models.UserRequest) (models.User, error) {
	path, err := resourcePath(userEndpoint, id)
	if err != nil {
		return models.User{}, err
	}
	return gateway.Put[models.User](ctx, h.gw, path, req)
}

func (h *httpAdapter) DeleteUser(ctx context.Context, id string) error {
	path, err := resourcePath(userEndpoint, id)
	if err != nil {
		return err
	}
	return gateway.Delete(ctx, h.gw, path)
}
