// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/models"
)

// Login implements [AuthAdapter] via POST /auth/login.
func (h *httpAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return gateway.Post[models.AuthResponse](ctx, h.gw, authEndpoint+"/login", req)
}

// Register implements [AuthAdapter] via POST /auth/register.
func (h *httpAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return gateway.Post[models.AuthResponse](ctx, h.gw, authEndpoint+"/register", req)
}
