// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message constants shared by the gateway,
// services and the terminal UI.
//
// Keeping the wording in one place guarantees that every failure path renders
// the same fallback text regardless of which layer produced it.
package app

const (
	// MsgUnexpectedError is shown when the server answered with an error
	// status but no usable message could be extracted from the body.
	MsgUnexpectedError = "An unexpected error occurred."

	// MsgNetworkUnavailable is shown when a request was sent but no response
	// arrived (connection refused, dropped, timed out).
	MsgNetworkUnavailable = "Unable to connect to the server. Please check your network."

	// MsgUnknownError is shown when a request could not be built or sent and
	// the transport gave no error text.
	MsgUnknownError = "An unknown error occurred."

	// MsgAccessDenied is logged when the backend answers 403.
	MsgAccessDenied = "access denied"

	// MsgSessionExpired is shown on the login screen after a forced logout.
	MsgSessionExpired = "Your session has expired. Please sign in again."

	MsgLoginFailed        = "Login failed. Please check your credentials."
	MsgRegistrationFailed = "Registration failed. Please try again."
	MsgEmptyUpload        = "Failed to upload file: no data returned"
)
