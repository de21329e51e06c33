// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/config"
	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/internal/service"
	"github.com/MKhiriev/workhub-console/internal/session"
	"github.com/MKhiriev/workhub-console/internal/store"
	"github.com/MKhiriev/workhub-console/internal/tui"
	"github.com/MKhiriev/workhub-console/internal/workers"
	"github.com/MKhiriev/workhub-console/models"
)

// App is the assembled console: local storage, session, gateway, services,
// background workers and the terminal UI.
type App struct {
	storages *store.ClientStorages
	session  *session.Store
	workers  *workers.Workers
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil client config")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sess := session.New(storages.SessionRepository, log)
	navigator := tui.NewNavigator()

	gw := gateway.New(cfg.Gateway, gateway.Dependencies{
		Session:    sess,
		Fallback:   sess,
		Navigator:  navigator,
		LoginRoute: cfg.App.LoginRoute,
	}, log)

	services, err := service.NewServices(adapter.NewHTTPAdapters(gw, log), sess, buildInfo, cfg.Gateway, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	watcher := workers.NewSessionWatcher(sess, navigator, cfg.Workers, cfg.App.LoginRoute, log)

	return &App{
		storages: storages,
		session:  sess,
		workers:  workers.NewWorkers(watcher),
		ui:       tui.New(services, sess, navigator, log.GetChildLogger()),
		logger:   log,
	}, nil
}

// Run restores the previous session, starts the workers and blocks in the
// UI until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	startPath := string(routes.Dashboard)

	err := a.session.Restore(ctx)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrNoSession):
		startPath = string(routes.Login)
	case errors.Is(err, session.ErrSessionExpired):
		a.logger.Info().Msg("persisted session expired")
		startPath = string(routes.Login)
	default:
		a.logger.Warn().Err(err).Msg("restore session")
		startPath = string(routes.Login)
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx, startPath); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Close releases local storage. The session itself is kept for the next run.
func (a *App) Close() error {
	return a.storages.Close()
}
