// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/workhub-console/internal/gateway"
)

// MessageOf returns the text to show for err. Backend failures show the
// normalized message only; other errors show their own text. fallback is
// used when nothing readable is left. A nil err yields "".
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}

	if apiErr, ok := gateway.AsAPIError(err); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}

	// validation failures read better without the "invalid input: " prefix
	if errors.Is(err, ErrInvalidInput) {
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range multi.Unwrap() {
				if inner != ErrInvalidInput && inner.Error() != "" {
					return inner.Error()
				}
			}
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
