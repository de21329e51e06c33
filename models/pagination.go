// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// HasNext reports whether a page after this one exists.
func (p Page[T]) HasNext() bool {
	return p.Page+1 < p.TotalPages
}

// HasPrev reports whether a page before this one exists.
func (p Page[T]) HasPrev() bool {
	return p.Page > 0
}

// PageParams selects a page of a listing. Page is zero-based.
type PageParams struct {
	Page int
	Size int
	Sort string
}

// Query renders p as query parameters. A zero Size falls back to
// [DefaultPageSize].
func (p PageParams) Query() map[string]string {
	size := p.Size
	if size == 0 {
		size = DefaultPageSize
	}

	q := map[string]string{
		"page": strconv.Itoa(p.Page),
		"size": strconv.Itoa(size),
	}
	if p.Sort != "" {
		q["sort"] = p.Sort
	}
	return q
}
