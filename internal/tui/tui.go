// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the WorkHub console, built on
// Bubble Tea.
//
// Screens are addressed by the same paths as the web client ("/login",
// "/tasks/{id}", ...). Every navigation passes through routes.Guard, so a
// signed out user always lands on the login screen. [Navigator] lets code
// outside the program (the gateway on 401, the session watcher) move the
// user to another screen.
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/internal/service"
	"github.com/MKhiriev/workhub-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigator implements gateway.Navigator on top of a running program.
// Navigations requested while no program is attached are remembered and
// delivered (last one wins) once a program attaches.
type Navigator struct {
	mu      sync.Mutex
	program *tea.Program
	pending string
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// Navigate never blocks: the gateway may call it from inside a command.
func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.program == nil {
		n.pending = path
		return
	}
	go n.program.Send(redirectMsg{path: path})
}

func (n *Navigator) attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.program = p
	if n.pending != "" {
		path := n.pending
		n.pending = ""
		go p.Send(redirectMsg{path: path})
	}
}

func (n *Navigator) detach() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = nil
}

type TUI struct {
	services  *service.Services
	session   routes.Session
	navigator *Navigator
	logger    *logger.Logger
}

func New(services *service.Services, session routes.Session, navigator *Navigator, logger *logger.Logger) *TUI {
	if navigator == nil {
		navigator = NewNavigator()
	}
	return &TUI{services: services, session: session, navigator: navigator, logger: logger}
}

// Run shows startPath and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, startPath string) error {
	model := newAppModel(ctx, t.services, t.session, startPath)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.navigator.attach(p)
	defer t.navigator.detach()

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.user != (models.User{}) {
		t.logger.Info().Str("user", result.user.Email).Msg("console closed")
	}
	return nil
}
