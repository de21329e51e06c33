// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/models"
)

// UploadFile sends file as multipart/form-data. The backend may answer with
// a bare FileUploadResponse or an enveloped one; the gateway makes both look
// the same.
func (h *httpAdapter) UploadFile(ctx context.Context, file models.FileUpload) (models.FileUploadResponse, error) {
	if file.FieldName == "" {
		file.FieldName = defaultFileField
	}
	req := gateway.NewRequest(http.MethodPost, fileEndpoint).WithFile(file)
	return gateway.Call[models.FileUploadResponse](ctx, h.gw, req)
}

func (h *httpAdapter) DeleteFile(ctx context.Context, key string) error {
	path, err := resourcePath(fileEndpoint, key)
	if err != nil {
		return err
	}
	return gateway.Delete(ctx, h.gw, path)
}
