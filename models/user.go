// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a WorkHub account as returned by the backend.
type User struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"companyId"`
	CompanyName string   `json:"companyName,omitempty"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Role        UserRole `json:"role"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// HasAnyRole reports whether the user holds at least one of roles. An empty
// roles list matches every user.
func (u User) HasAnyRole(roles ...UserRole) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// UserRequest is the body of create and update calls for users.
// IsActive is a pointer so that updates can leave the flag untouched.
type UserRequest struct {
	CompanyID string   `json:"companyId"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Role      UserRole `json:"role"`
	IsActive  *bool    `json:"isActive,omitempty"`
}
