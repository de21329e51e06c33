// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/workhub-console/internal/config"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/utils"
)

// Dependencies are the collaborators the gateway consults on every call.
// Any of them may be nil: a nil Session or Fallback means "no token", a nil
// Navigator skips the redirect after a 401.
type Dependencies struct {
	Session   SessionProvider
	Fallback  TokenFallback
	Navigator Navigator

	// LoginRoute is where the user is sent after a 401.
	LoginRoute string
}

// Gateway is the configured HTTP pipeline. It is safe for concurrent use.
type Gateway struct {
	client     *utils.HTTPClient
	session    SessionProvider
	fallback   TokenFallback
	navigator  Navigator
	loginRoute string
	ids        *utils.UUIDGenerator
	logger     *logger.Logger
}

// New builds a gateway bound to cfg.BaseURL and registers the request and
// response middleware on its own resty client.
func New(cfg config.ClientGateway, deps Dependencies, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}

	g := &Gateway{
		client:     utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		session:    deps.Session,
		fallback:   deps.Fallback,
		navigator:  deps.Navigator,
		loginRoute: deps.LoginRoute,
		ids:        utils.NewUUIDGenerator(),
		logger:     log,
	}
	if g.loginRoute == "" {
		g.loginRoute = config.DefaultLoginRoute
	}

	g.client.
		SetRetryCount(0).
		OnBeforeRequest(g.injectHeaders).
		SetPreRequestHook(markDispatched).
		OnAfterResponse(unwrapEnvelope)

	return g
}

// BaseURL returns the backend root every request path is resolved against.
func (g *Gateway) BaseURL() string {
	return g.client.BaseURL
}

// Do sends req and returns the normalized payload: the envelope data when the
// body was an envelope, the body itself otherwise. On failure the returned
// error is always an [*APIError].
func (g *Gateway) Do(ctx context.Context, req *Request) (json.RawMessage, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := req.validate(); err != nil {
		return nil, g.fail(requestError(err, req))
	}
	if err := ctx.Err(); err != nil {
		return nil, g.fail(requestError(err, req))
	}

	requestID := g.ids.Generate()
	marker := &dispatchMarker{}
	ctx = utils.WithRequestID(context.WithValue(ctx, dispatchKey{}, marker), requestID)
	log := g.logger.WithRequestID(requestID)

	r, err := g.build(ctx, req)
	if err != nil {
		return nil, g.fail(requestError(err, req))
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	elapsed := time.Since(start)

	if err == nil && !resp.IsError() {
		log.Debug().
			Str("method", req.Method).
			Str("path", req.Path).
			Int("status", resp.StatusCode()).
			Dur("elapsed", elapsed).
			Msg("api call succeeded")
		return json.RawMessage(resp.Body()), nil
	}

	apiErr := classify(req, resp, err, marker.sent.Load())
	log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", apiErr.Status).
		Stringer("kind", apiErr.Kind).
		Dur("elapsed", elapsed).
		Err(err).
		Msg("api call failed")

	return nil, g.fail(apiErr)
}

func (g *Gateway) build(ctx context.Context, req *Request) (*resty.Request, error) {
	r := g.client.R().SetContext(ctx)

	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}

	switch {
	case req.File != nil:
		field := req.File.FieldName
		if field == "" {
			field = "file"
		}
		r.SetFileReader(field, req.File.FileName, bytes.NewReader(req.File.Content))
	case req.Body != nil:
		body, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	return r, nil
}

// fail runs the status-specific side effects and returns apiErr.
func (g *Gateway) fail(apiErr *APIError) *APIError {
	switch apiErr.Status {
	case http.StatusUnauthorized:
		apiErr.SessionExpired = true
		g.logger.Info().Msg("session rejected by the server, signing out")
		if g.session != nil {
			g.session.Logout()
		}
		if g.navigator != nil {
			g.navigator.Navigate(g.loginRoute)
		}
	case http.StatusForbidden:
		g.logger.Warn().Str("message", apiErr.Message).Msg("access denied")
	}
	return apiErr
}

// token prefers the in-memory session and falls back to the persisted copy.
func (g *Gateway) token() string {
	if g.session != nil {
		if t := g.session.Token(); t != "" {
			return t
		}
	}
	if g.fallback != nil {
		return g.fallback.PersistedToken()
	}
	return ""
}

// injectHeaders is the request middleware.
func (g *Gateway) injectHeaders(_ *resty.Client, r *resty.Request) error {
	if r.Header == nil {
		return errMalformedHeader
	}
	if token := g.token(); token != "" {
		r.SetAuthToken(token)
	}
	if id, ok := utils.GetRequestIDFromContext(r.Context()); ok {
		r.SetHeader("X-Request-ID", id)
	}
	return nil
}

// unwrapEnvelope is the success response middleware. Error responses are left
// intact for classification.
func unwrapEnvelope(_ *resty.Client, resp *resty.Response) error {
	if resp.IsError() {
		return nil
	}
	if body := resp.Body(); len(body) > 0 {
		resp.SetBody(Unwrap(body))
	}
	return nil
}

type dispatchKey struct{}

// dispatchMarker records that the request reached the transport, which is
// what separates network failures from requests that were never sent.
type dispatchMarker struct {
	sent atomic.Bool
}

func markDispatched(_ *resty.Client, r *http.Request) error {
	if m, ok := r.Context().Value(dispatchKey{}).(*dispatchMarker); ok {
		m.sent.Store(true)
	}
	return nil
}
