// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Source-level problems are
// caught here; semantic checks of the console view live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.API.RequestTimeout < 0 || cfg.Workers.SessionCheckInterval < 0 {
		return fmt.Errorf("negative durations are not allowed")
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Gateway.BaseURL == "" || cfg.Gateway.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Workers.SessionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if !strings.HasPrefix(cfg.App.LoginRoute, "/") {
		return ErrInvalidAppConfigs
	}

	return nil
}

// normalizeBaseURL accepts "host:port/api" as well as full URLs, defaults the
// scheme to http and strips trailing slashes.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
