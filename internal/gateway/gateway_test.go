// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/workhub-console/internal/app"
	"github.com/MKhiriev/workhub-console/internal/config"
	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/mock"
	"github.com/MKhiriev/workhub-console/internal/utils"
	"github.com/MKhiriev/workhub-console/models"
)

type staticToken string

func (s staticToken) Token() string          { return string(s) }
func (s staticToken) Logout()                {}
func (s staticToken) PersistedToken() string { return string(s) }

func newServer(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(srv *httptest.Server, deps gateway.Dependencies) *gateway.Gateway {
	return gateway.New(config.ClientGateway{
		BaseURL:        srv.URL + "/api/",
		RequestTimeout: 2 * time.Second,
	}, deps, logger.Nop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func requireAPIError(t *testing.T, err error) *gateway.APIError {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := gateway.AsAPIError(err)
	require.True(t, ok, "expected *gateway.APIError, got %T", err)
	require.NotEmpty(t, apiErr.Message)
	return apiErr
}

// ── success path ─────────────────────────────────────────────────────────────

func TestGateway_UnwrapsEnvelope(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/companies/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"success":true,"message":"ok","data":{"id":"c7","name":"Acme"},"timestamp":"2024-05-01T10:00:00"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	payload, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodGet, "/companies/7"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c7","name":"Acme"}`, string(payload))

	company, err := gateway.Get[models.Company](context.Background(), gw, "/companies/7", nil)
	require.NoError(t, err)
	assert.Equal(t, "c7", company.ID)
	assert.Equal(t, "Acme", company.Name)
}

func TestGateway_EnvelopeWithoutDataYieldsNull(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Delete("/api/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"success":true,"message":"Deleted","timestamp":"2024-05-01T10:00:00"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	payload, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodDelete, "/jobs/3"))
	require.NoError(t, err)
	assert.Equal(t, "null", string(payload))

	job, err := gateway.Call[*models.Job](context.Background(), gw, gateway.NewRequest(http.MethodDelete, "/jobs/3"))
	require.NoError(t, err)
	assert.Nil(t, job)

	require.NoError(t, gateway.Delete(context.Background(), gw, "/jobs/3"))
}

func TestGateway_NonEnvelopePassesThrough(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/raw", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"key":"a.png","url":"http://cdn/a.png","size":3}`)
		})
		r.Get("/api/list", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `[1,2,3]`)
		})
		r.Get("/api/empty", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})
	ctx := context.Background()

	upload, err := gateway.Get[models.FileUploadResponse](ctx, gw, "/raw", nil)
	require.NoError(t, err)
	assert.Equal(t, "a.png", upload.Key)
	assert.Equal(t, int64(3), upload.Size)

	list, err := gateway.Get[[]int](ctx, gw, "/list", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, list)

	payload, err := gw.Do(ctx, gateway.NewRequest(http.MethodGet, "/empty"))
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestGateway_DecodeMismatch(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/companies/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"success":true,"data":"not an object","timestamp":"t"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	_, err := gateway.Get[models.Company](context.Background(), gw, "/companies/1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrDecode)
}

// ── request path ─────────────────────────────────────────────────────────────

func TestGateway_AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name     string
		session  gateway.SessionProvider
		fallback gateway.TokenFallback
		want     string
	}{
		{name: "in-memory token", session: staticToken("mem"), fallback: staticToken("disk"), want: "Bearer mem"},
		{name: "persisted fallback", session: staticToken(""), fallback: staticToken("disk"), want: "Bearer disk"},
		{name: "no token anywhere", session: staticToken(""), fallback: staticToken(""), want: ""},
		{name: "no collaborators", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth, gotRequestID string
			srv := newServer(t, func(r chi.Router) {
				r.Get("/api/users", func(w http.ResponseWriter, r *http.Request) {
					gotAuth = r.Header.Get("Authorization")
					gotRequestID = r.Header.Get("X-Request-ID")
					writeJSON(w, http.StatusOK, `[]`)
				})
			})
			gw := newGateway(srv, gateway.Dependencies{Session: tt.session, Fallback: tt.fallback})

			_, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodGet, "/users"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, gotAuth)
			assert.NotEmpty(t, gotRequestID)
			if tt.want != "" {
				token, err := utils.ParseBearerToken(gotAuth)
				require.NoError(t, err)
				assert.Equal(t, tt.want, "Bearer "+token)
			}
		})
	}
}

func TestGateway_ForwardsQueryHeadersAndBody(t *testing.T) {
	var (
		gotQuery  string
		gotHeader string
		gotBody   models.JobStatusUpdateRequest
	)
	srv := newServer(t, func(r chi.Router) {
		r.Patch("/api/jobs/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("notify")
			gotHeader = r.Header.Get("X-Client")
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":"j5","status":"COMPLETED"},"timestamp":"t"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	req := gateway.NewRequest(http.MethodPatch, "/jobs/5/status").
		WithBody(models.JobStatusUpdateRequest{Status: models.JobCompleted}).
		WithQuery(map[string]string{"notify": "true"}).
		WithHeader("X-Client", "console")

	job, err := gateway.Call[models.Job](context.Background(), gw, req)
	require.NoError(t, err)
	assert.Equal(t, models.JobCompleted, job.Status)
	assert.Equal(t, "true", gotQuery)
	assert.Equal(t, "console", gotHeader)
	assert.Equal(t, models.JobCompleted, gotBody.Status)
}

func TestGateway_MultipartUpload(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/files", func(w http.ResponseWriter, r *http.Request) {
			file, header, err := r.FormFile("file")
			if !assert.NoError(t, err) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer file.Close()
			content, _ := io.ReadAll(file)
			assert.Equal(t, "logo.png", header.Filename)
			assert.Equal(t, "png-bytes", string(content))
			writeJSON(w, http.StatusOK, `{"key":"k1","url":"http://cdn/k1","size":9,"contentType":"image/png"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	req := gateway.NewRequest(http.MethodPost, "/files").WithFile(models.FileUpload{
		FileName: "logo.png",
		Content:  []byte("png-bytes"),
	})
	resp, err := gateway.Call[models.FileUploadResponse](context.Background(), gw, req)
	require.NoError(t, err)
	assert.Equal(t, "k1", resp.Key)
	assert.Equal(t, "image/png", resp.ContentType)
}

// ── failure path ─────────────────────────────────────────────────────────────

func TestGateway_ServerErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantDetails bool
		wantIs      error
		wantRaw     any
	}{
		{
			name:        "bare error detail",
			status:      http.StatusNotFound,
			body:        `{"error":"Not Found","message":"Company not found","status":404,"path":"/api/companies/99"}`,
			wantMessage: "Company not found",
			wantDetails: true,
			wantIs:      gateway.ErrNotFound,
		},
		{
			name:        "enveloped error detail",
			status:      http.StatusBadRequest,
			body:        `{"success":false,"message":"Validation failed","timestamp":"t","data":{"error":"Bad Request","message":"Invalid input","status":400,"path":"/api/users","validationErrors":[{"field":"email","message":"invalid"}]}}`,
			wantMessage: "Invalid input",
			wantDetails: true,
			wantIs:      gateway.ErrBadRequest,
		},
		{
			name:        "envelope message only",
			status:      http.StatusConflict,
			body:        `{"success":false,"message":"Email already exists","timestamp":"t"}`,
			wantMessage: "Email already exists",
			wantIs:      gateway.ErrConflict,
		},
		{
			name:        "plain top-level message",
			status:      http.StatusInternalServerError,
			body:        `{"message":"database down"}`,
			wantMessage: "database down",
			wantIs:      gateway.ErrInternalServerError,
		},
		{
			name:        "non json body",
			status:      http.StatusBadGateway,
			body:        `Bad Gateway`,
			wantMessage: app.MsgUnexpectedError,
			wantIs:      gateway.ErrInternalServerError,
			wantRaw:     "Bad Gateway",
		},
		{
			name:        "empty body",
			status:      http.StatusTeapot,
			body:        ``,
			wantMessage: app.MsgUnexpectedError,
			wantIs:      gateway.ErrUnexpectedStatus,
		},
		{
			name:        "details with empty message fall back",
			status:      http.StatusBadRequest,
			body:        `{"error":"Bad Request","message":"","status":400}`,
			wantMessage: app.MsgUnexpectedError,
			wantDetails: true,
			wantIs:      gateway.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(r chi.Router) {
				r.Get("/api/thing", func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, tt.status, tt.body)
				})
			})
			gw := newGateway(srv, gateway.Dependencies{})

			payload, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodGet, "/thing"))
			assert.Nil(t, payload)

			apiErr := requireAPIError(t, err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, gateway.KindServer, apiErr.Kind)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantDetails, apiErr.Details != nil)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.False(t, apiErr.SessionExpired)
			if tt.wantRaw != nil {
				assert.Equal(t, tt.wantRaw, apiErr.Raw)
			}
		})
	}
}

func TestGateway_ValidationErrorsExposed(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/users", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"error":"Bad Request","message":"Validation failed","status":400,"path":"/api/users","validationErrors":[{"field":"email","message":"must not be blank","rejectedValue":""},{"field":"password","message":"size must be between 6 and 100"}]}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	_, err := gateway.Post[models.User](context.Background(), gw, "/users", models.UserRequest{})
	apiErr := requireAPIError(t, err)

	fields := make([]string, 0, 2)
	for _, v := range apiErr.ValidationErrors() {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"email", "password"}, fields)
	assert.Equal(t, "/api/users", apiErr.Details.Path)
}

func TestGateway_UnauthorizedLogsOutAndNavigates(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionProvider(ctrl)
	navigator := mock.NewMockNavigator(ctrl)

	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"error":"Unauthorized","message":"JWT expired","status":401,"path":"/api/jobs"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{Session: session, Navigator: navigator, LoginRoute: "/login"})

	session.EXPECT().Token().Return("stale").Times(1)
	gomock.InOrder(
		session.EXPECT().Logout().Times(1),
		navigator.EXPECT().Navigate("/login").Times(1),
	)

	_, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodGet, "/jobs"))
	apiErr := requireAPIError(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "JWT expired", apiErr.Message)
	assert.True(t, apiErr.SessionExpired)
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
}

func TestGateway_UnauthorizedOnAnyEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionProvider(ctrl)
	navigator := mock.NewMockNavigator(ctrl)

	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"Invalid email or password","timestamp":"t"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{Session: session, Navigator: navigator})

	session.EXPECT().Token().Return("").AnyTimes()
	session.EXPECT().Logout().Times(1)
	navigator.EXPECT().Navigate(config.DefaultLoginRoute).Times(1)

	_, err := gateway.Post[models.AuthResponse](context.Background(), gw, "/auth/login", models.LoginRequest{Email: "a@b.c", Password: "x"})
	apiErr := requireAPIError(t, err)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestGateway_ForbiddenHasNoSessionSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionProvider(ctrl)
	navigator := mock.NewMockNavigator(ctrl)

	srv := newServer(t, func(r chi.Router) {
		r.Delete("/api/companies/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, `{"error":"Forbidden","message":"Access denied","status":403,"path":"/api/companies/1"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{Session: session, Navigator: navigator})

	session.EXPECT().Token().Return("token").Times(1)

	err := gateway.Delete(context.Background(), gw, "/companies/1")
	apiErr := requireAPIError(t, err)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Access denied", apiErr.Message)
	assert.False(t, apiErr.SessionExpired)
	assert.ErrorIs(t, err, gateway.ErrForbidden)
}

func TestGateway_ConnectionDropped(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
			hj, ok := w.(http.Hijacker)
			if !assert.True(t, ok) {
				return
			}
			conn, _, err := hj.Hijack()
			if assert.NoError(t, err) {
				_ = conn.Close()
			}
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	_, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodGet, "/tasks"))
	apiErr := requireAPIError(t, err)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, gateway.KindNetwork, apiErr.Kind)
	assert.Equal(t, app.MsgNetworkUnavailable, apiErr.Message)
	assert.NotNil(t, apiErr.Raw)
	assert.Nil(t, apiErr.Details)
	assert.ErrorIs(t, err, gateway.ErrNetwork)
}

func TestGateway_Timeout(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/slow", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})
	})
	gw := gateway.New(config.ClientGateway{
		BaseURL:        srv.URL + "/api",
		RequestTimeout: 50 * time.Millisecond,
	}, gateway.Dependencies{}, logger.Nop())

	_, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodGet, "/slow"))
	apiErr := requireAPIError(t, err)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, gateway.KindNetwork, apiErr.Kind)
	assert.Equal(t, app.MsgNetworkUnavailable, apiErr.Message)
}

func TestGateway_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := gateway.New(config.ClientGateway{BaseURL: url, RequestTimeout: time.Second}, gateway.Dependencies{}, nil)

	_, err := gw.Do(context.Background(), gateway.NewRequest(http.MethodGet, "/companies"))
	apiErr := requireAPIError(t, err)
	assert.Equal(t, gateway.KindNetwork, apiErr.Kind)
	assert.Equal(t, app.MsgNetworkUnavailable, apiErr.Message)
}

func TestGateway_RequestNeverSent(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(r chi.Router) {
		r.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			writeJSON(w, http.StatusOK, `{}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		req  *gateway.Request
	}{
		{name: "nil request", ctx: context.Background(), req: nil},
		{name: "unsupported method", ctx: context.Background(), req: gateway.NewRequest("TRACE", "/x")},
		{name: "body cannot be encoded", ctx: context.Background(), req: gateway.NewRequest(http.MethodPost, "/x").WithBody(make(chan int))},
		{name: "empty upload", ctx: context.Background(), req: gateway.NewRequest(http.MethodPost, "/files").WithFile(models.FileUpload{FileName: "a"})},
		{name: "context already canceled", ctx: canceled, req: gateway.NewRequest(http.MethodGet, "/x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gw.Do(tt.ctx, tt.req)
			apiErr := requireAPIError(t, err)
			assert.Equal(t, 0, apiErr.Status)
			assert.Equal(t, gateway.KindRequest, apiErr.Kind)
			assert.NotEqual(t, app.MsgNetworkUnavailable, apiErr.Message)
			assert.ErrorIs(t, err, gateway.ErrRequest)
		})
	}

	assert.Zero(t, hits.Load(), "no request may reach the server")
}

func TestGateway_NilRequestLeavesRawEmpty(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {})
	gw := newGateway(srv, gateway.Dependencies{})

	_, err := gw.Do(context.Background(), nil)
	apiErr := requireAPIError(t, err)
	assert.Nil(t, apiErr.Raw)
	assert.True(t, apiErr.Raw == nil)

	_, err = gw.Do(context.Background(), gateway.NewRequest("TRACE", "/x"))
	apiErr = requireAPIError(t, err)
	assert.NotNil(t, apiErr.Raw)
}

func TestGateway_CanceledContextMatchesCause(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {})
	gw := newGateway(srv, gateway.Dependencies{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Do(ctx, gateway.NewRequest(http.MethodGet, "/x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGateway_ConcurrentCallsAreIndependent(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "id") == "missing" {
				writeJSON(w, http.StatusNotFound, `{"error":"Not Found","message":"Task not found","status":404,"path":"/api/tasks/missing"}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":"t1","title":"ok"},"timestamp":"t"}`)
		})
	})
	gw := newGateway(srv, gateway.Dependencies{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := "/tasks/1"
			if i%2 == 0 {
				path = "/tasks/missing"
			}
			task, err := gateway.Get[models.Task](context.Background(), gw, path, nil)
			if i%2 == 0 {
				assert.ErrorIs(t, err, gateway.ErrNotFound)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "ok", task.Title)
		}(i)
	}
	wg.Wait()
}
