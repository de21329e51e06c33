// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/workhub-console/internal/app"
	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/service"
)

var ErrUserQuit = errors.New("user quit")

// errorText is what the error overlay shows for err.
func errorText(err error) string {
	return service.MessageOf(err, app.MsgUnexpectedError)
}

// sessionExpired reports whether err ended the session. The gateway has
// already navigated to the login route in that case.
func sessionExpired(err error) bool {
	apiErr, ok := gateway.AsAPIError(err)
	return ok && apiErr.SessionExpired
}

var (
	ErrLogoTooLarge = errors.New("logo must be smaller than 5MB")
	ErrLogoNotImage = errors.New("logo must be an image file")
)
