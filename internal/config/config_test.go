// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags(nil).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultLoginRoute, cfg.App.LoginRoute)
	assert.Equal(t, DefaultSessionCheckInterval, cfg.Workers.SessionCheckInterval)
}

func TestBuilder_EnvTakesPrecedenceOverFlags(t *testing.T) {
	t.Setenv("WORKHUB_API_BASE_URL", "http://env:8080/api")
	t.Setenv("WORKHUB_API_REQUEST_TIMEOUT", "3s")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "http://flag:8080/api", "-d", "flag.db"}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://env:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
}

func TestBuilder_JSONFillsGaps(t *testing.T) {
	path := writeJSON(t, `{
		"api": {"base_url": "http://json:9000/api", "request_timeout": "7s"},
		"storage": {"db": {"dsn": "json.db"}},
		"workers": {"session_check_interval": "1m"},
		"app": {"login_route": "/signin"}
	}`)

	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", path, "-d", "flag.db"}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://json:9000/api", cfg.API.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.SessionCheckInterval)
	assert.Equal(t, "/signin", cfg.App.LoginRoute)
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-config", filepath.Join(t.TempDir(), "nope.json")}).
		withJSON().
		build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestBuilder_BadFlag(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-t", "not-a-duration"}).
		build()
	require.Error(t, err)
}

func TestBuilder_BadEnv(t *testing.T) {
	t.Setenv("WORKHUB_API_REQUEST_TIMEOUT", "forever")

	_, err := newConfigBuilder().withEnv().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", in: `1000`, want: time.Microsecond},
		{name: "bad string", in: `"soon"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	base := defaultConfig()

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
		check   func(t *testing.T, c *ClientConfig)
	}{
		{
			name: "defaults are valid",
			check: func(t *testing.T, c *ClientConfig) {
				assert.Equal(t, "http://localhost:8080/api", c.Gateway.BaseURL)
				assert.Equal(t, 10*time.Second, c.Gateway.RequestTimeout)
			},
		},
		{
			name:   "scheme is added and trailing slash trimmed",
			mutate: func(c *StructuredConfig) { c.API.BaseURL = "workhub.local:8080/api/" },
			check: func(t *testing.T, c *ClientConfig) {
				assert.Equal(t, "http://workhub.local:8080/api", c.Gateway.BaseURL)
			},
		},
		{
			name:    "empty base url",
			mutate:  func(c *StructuredConfig) { c.API.BaseURL = " " },
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *StructuredConfig) { c.API.RequestTimeout = 0 },
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero interval",
			mutate:  func(c *StructuredConfig) { c.Workers.SessionCheckInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "relative login route",
			mutate:  func(c *StructuredConfig) { c.App.LoginRoute = "login" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			got, err := newClientConfig(&cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}
