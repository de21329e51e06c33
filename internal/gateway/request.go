// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"net/http"

	"github.com/MKhiriev/workhub-console/models"
)

// Request describes one outbound API call. Path is relative to the configured
// base URL and must start with "/".
type Request struct {
	Method  string
	Path    string
	Body    any
	Query   map[string]string
	Headers map[string]string

	// File, when set, sends the call as multipart/form-data instead of JSON.
	// Body is ignored in that case.
	File *models.FileUpload
}

func NewRequest(method, path string) *Request {
	return &Request{Method: method, Path: path}
}

func (r *Request) WithBody(body any) *Request {
	r.Body = body
	return r
}

func (r *Request) WithQuery(query map[string]string) *Request {
	if r.Query == nil {
		r.Query = make(map[string]string, len(query))
	}
	for k, v := range query {
		r.Query[k] = v
	}
	return r
}

func (r *Request) WithHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string, 1)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) WithFile(file models.FileUpload) *Request {
	r.File = &file
	return r
}

func (r *Request) validate() error {
	if r == nil {
		return errNilRequest
	}
	switch r.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return errBadMethod
	}
	if r.File != nil && len(r.File.Content) == 0 {
		return errEmptyFile
	}
	return nil
}
