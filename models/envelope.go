// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire types exchanged with the WorkHub REST API and
// the entities rendered by the console.
package models

// Envelope is the wrapper the WorkHub backend puts around most responses.
// The gateway unwraps it structurally, so callers normally never see it; the
// type exists for encoding fixtures and for documentation of the contract.
type Envelope[T any] struct {
	// Success reports whether the backend handled the request successfully.
	Success bool `json:"success"`

	// Message is a short human-readable summary produced by the backend.
	Message string `json:"message"`

	// Data is the payload. It is omitted for operations without a result
	// (e.g. deletes).
	Data *T `json:"data,omitempty"`

	// Timestamp is the server time the envelope was produced at.
	Timestamp string `json:"timestamp"`
}

// ErrorDetail is the shape of a failure reported by the backend. It is
// usually delivered inside an [Envelope] as its Data.
type ErrorDetail struct {
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Status           int               `json:"status"`
	Path             string            `json:"path"`
	Timestamp        string            `json:"timestamp,omitempty"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue,omitempty"`
}
