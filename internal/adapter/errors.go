// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrEmptyID is returned when a path parameter is blank.
	ErrEmptyID = errors.New("empty resource id")

	// ErrUnsupportedFilter is returned when no listing endpoint serves the
	// requested filter combination.
	ErrUnsupportedFilter = errors.New("unsupported filter combination")
)
