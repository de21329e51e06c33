// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
		return loginDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx, dashboard := m.ctx, m.services.DashboardService
	return func() tea.Msg {
		summary, err := dashboard.Summary(ctx)
		return dashboardLoadedMsg{summary: summary, err: err}
	}
}

func (m appModel) cmdLoadList(page int) tea.Cmd {
	if page < 0 {
		page = 0
	}
	ctx, spec, user, route := m.ctx, m.list.spec, m.user, m.match.Route
	return func() tea.Msg {
		data, err := spec.load(ctx, user, models.PageParams{Page: page, Size: listPageSize})
		return listLoadedMsg{route: route, page: data, err: err}
	}
}

func (m appModel) cmdLoadCompany(id string) tea.Cmd {
	ctx, companies, users := m.ctx, m.services.CompanyService, m.services.UserService
	return func() tea.Msg {
		company, err := companies.Get(ctx, id)
		if err != nil {
			return companyLoadedMsg{err: err}
		}
		members, err := users.List(ctx, id, models.PageParams{Size: models.MaxPageSize})
		if err != nil {
			return companyLoadedMsg{err: err}
		}
		return companyLoadedMsg{company: company, users: members}
	}
}

func (m appModel) cmdLoadTask(id string) tea.Cmd {
	ctx, tasks, comments := m.ctx, m.services.TaskService, m.services.CommentService
	return func() tea.Msg {
		task, err := tasks.Get(ctx, id)
		if err != nil {
			return taskLoadedMsg{err: err}
		}
		list, err := comments.ListByTask(ctx, id, models.PageParams{Size: commentsPageSize, Sort: "createdAt,asc"})
		if err != nil {
			return taskLoadedMsg{err: err}
		}
		return taskLoadedMsg{task: task, comments: list}
	}
}

func (m appModel) cmdAddComment(taskID, message string) tea.Cmd {
	ctx, comments := m.ctx, m.services.CommentService
	return func() tea.Msg {
		comment, err := comments.Add(ctx, taskID, message)
		return commentAddedMsg{comment: comment, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, remove, route := m.ctx, m.list.spec.remove, m.match.Route
	if remove == nil {
		return nil
	}
	return func() tea.Msg {
		return itemDeletedMsg{route: route, err: remove(ctx, id)}
	}
}

func (m appModel) cmdNextStatus(r row) tea.Cmd {
	ctx, next, route := m.ctx, m.list.spec.nextStatus, m.match.Route
	return func() tea.Msg {
		return statusChangedMsg{route: route, err: next(ctx, r)}
	}
}

func (m appModel) cmdNextTaskStatus(task models.Task) tea.Cmd {
	ctx, tasks := m.ctx, m.services.TaskService
	return func() tea.Msg {
		_, err := tasks.UpdateStatus(ctx, task.ID, nextOf(models.AllTaskStatuses, task.Status))
		return statusChangedMsg{route: routes.TaskDetail, err: err}
	}
}

func (m appModel) cmdSaveCompany(in companyFormInput) tea.Cmd {
	ctx, svc := m.ctx, m.services
	return func() tea.Msg {
		company, err := saveCompany(ctx, svc, in)
		return companySavedMsg{company: company, err: err}
	}
}

// cmdLoadCandidates loads the user directory for the add-user picker.
func (m appModel) cmdLoadCandidates() tea.Cmd {
	ctx, users := m.ctx, m.services.UserService
	return func() tea.Msg {
		page, err := users.List(ctx, "", models.PageParams{Size: models.MaxPageSize})
		return candidatesLoadedMsg{users: page.Items, err: err}
	}
}

func (m appModel) cmdAddUser(userID string) tea.Cmd {
	ctx, companies, companyID := m.ctx, m.services.CompanyService, m.company.id
	return func() tea.Msg {
		err := companies.AddUser(ctx, companyID, models.AddUserToCompanyRequest{UserID: userID})
		return userAddedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
