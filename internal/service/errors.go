// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidInput wraps validation failures detected before a request is
	// sent.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotSignedIn = errors.New("not signed in")

	// ErrEmptyUpload is returned when the backend accepted an upload but
	// described no stored object.
	ErrEmptyUpload = errors.New("failed to upload file: no data returned")

	ErrNilDependency = errors.New("service dependency is nil")
)
