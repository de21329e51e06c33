// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/models"
)

// navigateMsg is internal navigation between screens.
type navigateMsg struct {
	path string
}

// redirectMsg is navigation requested from outside the program, by the
// gateway or a worker.
type redirectMsg struct {
	path string
}

type loginDoneMsg struct {
	user models.User
	err  error
}

type dashboardLoadedMsg struct {
	summary models.DashboardSummary
	err     error
}

type listLoadedMsg struct {
	route routes.Route
	page  listPage
	err   error
}

type companyLoadedMsg struct {
	company models.Company
	users   models.Page[models.User]
	err     error
}

type taskLoadedMsg struct {
	task     models.Task
	comments models.Page[models.TaskComment]
	err      error
}

type commentAddedMsg struct {
	comment models.TaskComment
	err     error
}

type itemDeletedMsg struct {
	route routes.Route
	err   error
}

type statusChangedMsg struct {
	route routes.Route
	err   error
}

type companySavedMsg struct {
	company models.Company
	err     error
}

type candidatesLoadedMsg struct {
	users []models.User
	err   error
}

type userAddedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
