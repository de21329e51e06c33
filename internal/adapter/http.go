// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/logger"
)

const (
	authEndpoint     = "/auth"
	companyEndpoint  = "/companies"
	userEndpoint     = "/users"
	jobEndpoint      = "/jobs"
	taskEndpoint     = "/tasks"
	commentEndpoint  = "/task-comments"
	fileEndpoint     = "/files"
	defaultFileField = "file"
)

// Adapters groups the typed endpoints so that they can be passed around as
// one value.
type Adapters struct {
	Auth      AuthAdapter
	Companies CompanyAdapter
	Users     UserAdapter
	Jobs      JobAdapter
	Tasks     TaskAdapter
	Comments  CommentAdapter
	Files     FileAdapter
}

// httpAdapter implements every adapter interface on top of one gateway.
type httpAdapter struct {
	gw     gateway.Doer
	logger *logger.Logger
}

// NewHTTPAdapters wires all WorkHub endpoints to gw.
func NewHTTPAdapters(gw gateway.Doer, logger *logger.Logger) *Adapters {
	logger.Debug().Msg("creating http adapters")

	a := &httpAdapter{gw: gw, logger: logger}
	return &Adapters{
		Auth:      a,
		Companies: a,
		Users:     a,
		Jobs:      a,
		Tasks:     a,
		Comments:  a,
		Files:     a,
	}
}

// resourcePath joins base with escaped path segments. Blank segments are
// rejected so that "/jobs/" is never called by accident.
func resourcePath(base string, segments ...string) (string, error) {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		if strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyID, base)
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String(), nil
}
