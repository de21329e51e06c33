// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the console flags from args.
//
// Flags:
//
//	-a API base URL (e.g. http://localhost:8080/api)
//	-t request timeout (e.g. "10s")
//	-d local database DSN
//	-c/-config JSON file path with configs
//	-log-file log file path
//	-session-check-interval session watcher interval (e.g. "30s")
//	-login-route route shown after a forced logout
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("workhub", flag.ContinueOnError)

	var (
		baseURL              string
		requestTimeout       time.Duration
		databaseDSN          string
		jsonConfigPath       string
		logFile              string
		sessionCheckInterval time.Duration
		loginRoute           string
	)

	fs.StringVar(&baseURL, "a", "", "WorkHub API base URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session watcher interval (e.g., 30s)")
	fs.StringVar(&loginRoute, "login-route", "", "Route shown after a forced logout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LoginRoute: loginRoute,
			LogFile:    logFile,
		},
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			SessionCheckInterval: sessionCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
