// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/workhub-console/internal/app"
	"github.com/MKhiriev/workhub-console/models"
)

// classify turns the outcome of a failed call into an [*APIError]. Checks run
// in priority order and exactly one branch applies.
func classify(req *Request, resp *resty.Response, err error, dispatched bool) *APIError {
	switch {
	case resp != nil && resp.RawResponse != nil && resp.IsError():
		return serverError(resp, err)
	case dispatched:
		return networkError(req, resp, err)
	default:
		return requestError(err, req)
	}
}

func serverError(resp *resty.Response, transportErr error) *APIError {
	body := resp.Body()
	apiErr := &APIError{
		Status: resp.StatusCode(),
		Kind:   KindServer,
		Raw:    rawBody(body),
		cause:  transportErr,
	}

	var topMessage string
	if obj, ok := jsonObject(body); ok {
		topMessage = topLevelMessage(obj)
		apiErr.Details = errorDetails(obj)
	}

	var transportMessage string
	if transportErr != nil {
		transportMessage = transportErr.Error()
	}

	var detailsMessage string
	if apiErr.Details != nil {
		detailsMessage = apiErr.Details.Message
	}

	apiErr.Message = firstNonEmpty(detailsMessage, topMessage, transportMessage, app.MsgUnexpectedError)
	return apiErr
}

func networkError(req *Request, resp *resty.Response, transportErr error) *APIError {
	var raw any = req
	if resp != nil && resp.Request != nil && resp.Request.RawRequest != nil {
		raw = resp.Request.RawRequest
	}
	return &APIError{
		Status:  0,
		Message: app.MsgNetworkUnavailable,
		Raw:     raw,
		Kind:    KindNetwork,
		cause:   transportErr,
	}
}

func requestError(err error, req *Request) *APIError {
	msg := app.MsgUnknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	apiErr := &APIError{
		Status:  0,
		Message: msg,
		Kind:    KindRequest,
		cause:   err,
	}
	if req != nil {
		apiErr.Raw = req
	}
	return apiErr
}

// errorDetails picks the enveloped data when the body is an envelope and the
// body itself otherwise, and decodes it when it has the error shape.
func errorDetails(body map[string]json.RawMessage) *models.ErrorDetail {
	candidate := body
	if isEnvelopeObject(body) {
		inner, ok := jsonObject(envelopeData(body))
		if !ok {
			return nil
		}
		candidate = inner
	}
	if !isErrorDetailObject(candidate) {
		return nil
	}

	encoded, err := json.Marshal(candidate)
	if err != nil {
		return nil
	}
	var details models.ErrorDetail
	if err := json.Unmarshal(encoded, &details); err != nil {
		return nil
	}
	return &details
}

// rawBody returns the decoded JSON body, the body as a string when it is not
// JSON, or nil when it is empty.
func rawBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}
	return decoded
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
