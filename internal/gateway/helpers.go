// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Call sends req through d and decodes the payload into T. A JSON null or an
// empty body yields the zero value of T.
func Call[T any](ctx context.Context, d Doer, req *Request) (T, error) {
	var out T

	payload, err := d.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if err := Decode(payload, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Decode unmarshals a normalized payload into dst.
func Decode(payload json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func Get[T any](ctx context.Context, d Doer, path string, query map[string]string) (T, error) {
	return Call[T](ctx, d, NewRequest(http.MethodGet, path).WithQuery(query))
}

func Post[T any](ctx context.Context, d Doer, path string, body any) (T, error) {
	return Call[T](ctx, d, NewRequest(http.MethodPost, path).WithBody(body))
}

func Put[T any](ctx context.Context, d Doer, path string, body any) (T, error) {
	return Call[T](ctx, d, NewRequest(http.MethodPut, path).WithBody(body))
}

func Patch[T any](ctx context.Context, d Doer, path string, body any) (T, error) {
	return Call[T](ctx, d, NewRequest(http.MethodPatch, path).WithBody(body))
}

// Delete sends a DELETE and discards any payload.
func Delete(ctx context.Context, d Doer, path string) error {
	_, err := d.Do(ctx, NewRequest(http.MethodDelete, path))
	return err
}
