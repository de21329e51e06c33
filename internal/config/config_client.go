// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds console-level settings.
type ClientApp struct {
	LoginRoute string
	LogFile    string
}

// ClientGateway holds the settings of the HTTP gateway.
type ClientGateway struct {
	// BaseURL is the normalized backend root, without a trailing slash.
	BaseURL string
	// RequestTimeout is the transport budget of a single call.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	SessionCheckInterval time.Duration
}

// ClientConfig is the console view assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Gateway ClientGateway
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the console config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	baseURL, err := normalizeBaseURL(cfg.API.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAPIConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LoginRoute: cfg.App.LoginRoute,
			LogFile:    cfg.App.LogFile,
		},
		Gateway: ClientGateway{
			BaseURL:        baseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SessionCheckInterval: cfg.Workers.SessionCheckInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
