// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/workhub-console/internal/config"
	"github.com/MKhiriev/workhub-console/models"
)

type appInfoService struct {
	buildInfo  models.AppBuildInfo
	backendURL string
}

func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.ClientGateway) AppInfoService {
	return &appInfoService{
		buildInfo:  buildInfo,
		backendURL: cfg.BaseURL,
	}
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) BackendURL() string {
	return s.backendURL
}
