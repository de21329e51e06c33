// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Company is a tenant of the WorkHub backend.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	LogoURL   string `json:"logoUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// CompanyRequest is the body of create and update calls for companies.
type CompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// AddUserToCompanyRequest attaches an existing user to a company.
type AddUserToCompanyRequest struct {
	UserID string   `json:"userId"`
	Role   UserRole `json:"role,omitempty"`
}
