// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway is the single choke point for all outbound WorkHub API
// traffic.
//
// Every call goes through the same pipeline:
//  1. request middleware injects "Authorization: Bearer <token>" when a
//     session token is available, plus an X-Request-ID;
//  2. response middleware unwraps the backend envelope
//     ({success, message, data, timestamp}) so callers only see data;
//  3. failures are flattened into exactly one [*APIError], whatever their
//     cause (error status, no response, request never sent);
//  4. a 401 clears the session and navigates to the login route, a 403 is
//     logged.
//
// The gateway keeps no cross-request state and never retries.
package gateway

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// SessionProvider is the in-memory session store the gateway reads the token
// from and clears on authentication loss.
type SessionProvider interface {
	// Token returns the current bearer token, or "" when signed out.
	Token() string

	// Logout clears the session state.
	Logout()
}

// TokenFallback is a durable token source consulted only when the
// [SessionProvider] has no token.
type TokenFallback interface {
	// PersistedToken returns a previously saved token, or "".
	PersistedToken() string
}

// Navigator switches the application to another route. The gateway only
// uses it to reach the login route after a 401.
type Navigator interface {
	Navigate(path string)
}

// Doer executes a request through the gateway pipeline and returns the
// normalized payload. [*Gateway] is the production implementation; the typed
// helpers ([Get], [Post], ...) accept any Doer.
type Doer interface {
	Do(ctx context.Context, req *Request) (json.RawMessage, error)
}
