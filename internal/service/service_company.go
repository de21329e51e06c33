// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/validators"
	"github.com/MKhiriev/workhub-console/models"
)

type companyService struct {
	adapter   adapter.CompanyAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewCompanyService(a adapter.CompanyAdapter, v validators.Validator, logger *logger.Logger) CompanyService {
	return &companyService{adapter: a, validator: v, logger: logger}
}

func (s *companyService) List(ctx context.Context, page models.PageParams) (models.Page[models.Company], error) {
	if err := validate(ctx, s.validator, page); err != nil {
		return models.Page[models.Company]{}, err
	}
	return s.adapter.ListCompanies(ctx, page)
}

func (s *companyService) Get(ctx context.Context, id string) (models.Company, error) {
	return s.adapter.GetCompany(ctx, id)
}

func (s *companyService) Create(ctx context.Context, req models.CompanyRequest) (models.Company, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Company{}, err
	}

	company, err := s.adapter.CreateCompany(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*companyService.Create").Msg("create company failed")
		return models.Company{}, err
	}

	s.logger.Info().Str("company_id", company.ID).Msg("company created")
	return company, nil
}

func (s *companyService) Update(ctx context.Context, id string, req models.CompanyRequest) (models.Company, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Company{}, err
	}

	company, err := s.adapter.UpdateCompany(ctx, id, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*companyService.Update").Str("company_id", id).Msg("update company failed")
		return models.Company{}, err
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteCompany(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*companyService.Delete").Str("company_id", id).Msg("delete company failed")
		return err
	}

	s.logger.Info().Str("company_id", id).Msg("company deleted")
	return nil
}

func (s *companyService) AddUser(ctx context.Context, companyID string, req models.AddUserToCompanyRequest) error {
	if err := validate(ctx, s.validator, req); err != nil {
		return err
	}

	if err := s.adapter.AddUserToCompany(ctx, companyID, req); err != nil {
		s.logger.Err(err).Str("func", "*companyService.AddUser").Str("company_id", companyID).Msg("add user to company failed")
		return err
	}
	return nil
}
