// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultBaseURL              = "http://localhost:8080/api"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultDSN                  = "workhub.db"
	DefaultLoginRoute           = "/login"
	DefaultSessionCheckInterval = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LoginRoute: DefaultLoginRoute,
		},
		API: API{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Workers: Workers{
			SessionCheckInterval: DefaultSessionCheckInterval,
		},
	}
}
