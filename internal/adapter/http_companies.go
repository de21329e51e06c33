// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/models"
)

func (h *httpAdapter) ListCompanies(ctx context.Context, page models.PageParams) (models.Page[models.Company], error) {
	return gateway.Get[models.Page[models.Company]](ctx, h.gw, companyEndpoint, page.Query())
}

func (h *httpAdapter) GetCompany(ctx context.Context, id string) (models.Company, error) {
	path, err := resourcePath(companyEndpoint, id)
	if err != nil {
		return models.Company{}, err
	}
	return gateway.Get[models.Company](ctx, h.gw, path, nil)
}

func (h *httpAdapter) CreateCompany(ctx context.Context, req models.CompanyRequest) (models.Company, error) {
	return gateway.Post[models.Company](ctx, h.gw, companyEndpoint, req)
}

func (h *httpAdapter) UpdateCompany(ctx context.Context, id string, req models.CompanyRequest) (models.Company, error) {
	path, err := resourcePath(companyEndpoint, id)
	if err != nil {
		return models.Company{}, err
	}
	return gateway.Put[models.Company](ctx, h.gw, path, req)
}

func (h *httpAdapter) DeleteCompany(ctx context.Context, id string) error {
	path, err := resourcePath(companyEndpoint, id)
	if err != nil {
		return err
	}
	return gateway.Delete(ctx, h.gw, path)
}

// AddUserToCompany sends POST /companies/{id}/users. The backend answers
// with an envelope without data.
func (h *httpAdapter) AddUserToCompany(ctx context.Context, companyID string, req models.AddUserToCompanyRequest) error {
	path, err := resourcePath(companyEndpoint, companyID)
	if err != nil {
		return err
	}
	_, err = h.gw.Do(ctx, gateway.NewRequest(http.MethodPost, path+"/users").WithBody(req))
	return err
}
