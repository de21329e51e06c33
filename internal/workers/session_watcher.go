// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/workhub-console/internal/config"
	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/logger"
)

// SessionWatcher signs the user out once the session token expires, the same
// way the gateway does when the backend answers 401. Without it an idle
// console would only notice on the next request.
type SessionWatcher struct {
	session    SessionState
	navigator  gateway.Navigator
	loginRoute string
	interval   time.Duration
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatcher creates an idle watcher. Zero or negative intervals fall
// back to [config.DefaultSessionCheckInterval]; an empty loginRoute to
// [config.DefaultLoginRoute].
func NewSessionWatcher(
	session SessionState,
	navigator gateway.Navigator,
	cfg config.ClientWorkers,
	loginRoute string,
	logger *logger.Logger,
) *SessionWatcher {
	interval := cfg.SessionCheckInterval
	if interval <= 0 {
		interval = config.DefaultSessionCheckInterval
	}
	if loginRoute == "" {
		loginRoute = config.DefaultLoginRoute
	}

	return &SessionWatcher{
		session:    session,
		navigator:  navigator,
		loginRoute: loginRoute,
		interval:   interval,
		logger:     logger,
	}
}

// Run implements Worker. A running watcher is restarted.
func (w *SessionWatcher) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-t.C:
				w.Check()
			}
		}
	}()

	w.logger.Debug().Dur("interval", w.interval).Msg("session watcher started")
}

// Stop implements Worker.
func (w *SessionWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Check inspects the session once. It reports whether the session had
// expired and was ended.
func (w *SessionWatcher) Check() bool {
	if !w.session.Expired() {
		return false
	}

	w.logger.Info().Str("route", w.loginRoute).Msg("session token expired, signing out")
	w.session.Logout()
	if w.navigator != nil {
		w.navigator.Navigate(w.loginRoute)
	}
	return true
}
