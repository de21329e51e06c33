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

type fileService struct {
	adapter   adapter.FileAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewFileService(a adapter.FileAdapter, v validators.Validator, logger *logger.Logger) FileService {
	return &fileService{adapter: a, validator: v, logger: logger}
}

func (s *fileService) Upload(ctx context.Context, file models.FileUpload) (models.FileUploadResponse, error) {
	if err := validate(ctx, s.validator, file); err != nil {
		return models.FileUploadResponse{}, err
	}

	resp, err := s.adapter.UploadFile(ctx, file)
	if err != nil {
		s.logger.Err(err).Str("func", "*fileService.Upload").Str("file", file.FileName).Msg("upload failed")
		return models.FileUploadResponse{}, err
	}
	if resp == (models.FileUploadResponse{}) {
		return models.FileUploadResponse{}, ErrEmptyUpload
	}

	s.logger.Info().Str("key", resp.Key).Int64("size", resp.Size).Msg("file uploaded")
	return resp, nil
}

func (s *fileService) Delete(ctx context.Context, key string) error {
	if err := s.adapter.DeleteFile(ctx, key); err != nil {
		s.logger.Err(err).Str("func", "*fileService.Delete").Str("key", key).Msg("delete file failed")
		return err
	}
	return nil
}
