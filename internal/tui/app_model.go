// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/workhub-console/internal/app"
	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/internal/service"
	"github.com/MKhiriev/workhub-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	ctx      context.Context
	services *service.Services
	session  routes.Session

	startPath string
	match     routes.Match
	user      models.User

	// notice is shown above the login form, e.g. after the session expired.
	notice string

	login     loginModel
	dashboard dashboardModel
	list      listModel
	task      taskDetailModel
	company   companyDetailModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool

	showCompanyForm bool
	companyForm     companyFormModel
}

func newAppModel(ctx context.Context, services *service.Services, session routes.Session, startPath string) appModel {
	if startPath == "" {
		startPath = string(routes.Dashboard)
	}
	return appModel{
		ctx:       ctx,
		services:  services,
		session:   session,
		startPath: startPath,
		login:     newLoginModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return navigateTo(m.startPath)
}

func navigateTo(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showCompanyForm {
			return m.updateCompanyForm(msg)
		}

	case navigateMsg:
		return m.navigate(msg.path)

	case redirectMsg:
		if routes.Resolve(msg.path).Route == routes.Login {
			// Already on the form: keep what the user typed and the error shown.
			if m.match.Route == routes.Login {
				return m, nil
			}
			if m.match.Route != routes.NotFound {
				m.notice = app.MsgSessionExpired
			}
		}
		return m.navigate(msg.path)

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = errorText(msg.err)
			return m, nil
		}
		m.notice = ""
		return m.navigate(string(routes.Dashboard))

	case dashboardLoadedMsg:
		if m.match.Route != routes.Dashboard {
			return m, nil
		}
		m.dashboard.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.dashboard.summary = msg.summary
		return m, nil

	case listLoadedMsg:
		if m.match.Route != msg.route {
			return m, nil
		}
		m.list.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.list.data = msg.page
		if m.list.idx >= len(m.list.data.rows) {
			m.list.idx = len(m.list.data.rows) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil

	case companyLoadedMsg:
		if m.match.Route != routes.CompanyDetail {
			return m, nil
		}
		m.company.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.company.company = msg.company
		m.company.users = msg.users
		return m, nil

	case taskLoadedMsg:
		if m.match.Route != routes.TaskDetail {
			return m, nil
		}
		m.task.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.task.task = msg.task
		m.task.comments = msg.comments
		return m, nil

	case commentAddedMsg:
		m.task.sending = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.task.composing = false
		m.task.input.Reset()
		m.task.input.Blur()
		m.task.status = "Comment added"
		return m, tea.Batch(m.cmdLoadTask(m.task.id), cmdClearStatus())

	case itemDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		if msg.route != m.match.Route {
			return m, nil
		}
		m.list.status = "Deleted"
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(m.list.data.page), cmdClearStatus())

	case statusChangedMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		if msg.route != m.match.Route {
			return m, nil
		}
		if msg.route == routes.TaskDetail {
			m.task.status = "Status updated"
			return m, tea.Batch(m.cmdLoadTask(m.task.id), cmdClearStatus())
		}
		m.list.status = "Status updated"
		return m, tea.Batch(m.cmdLoadList(m.list.data.page), cmdClearStatus())

	case companySavedMsg:
		if !m.showCompanyForm {
			return m, nil
		}
		m.companyForm.submitting = false
		if msg.err != nil {
			if sessionExpired(msg.err) {
				m.showCompanyForm = false
				m.fail(msg.err)
				return m, nil
			}
			m.companyForm.errMsg = errorText(msg.err)
			return m, nil
		}
		m.showCompanyForm = false
		m.setStatus("Saved " + msg.company.Name)
		switch m.match.Route {
		case routes.CompanyDetail:
			m.company.loading = true
			return m, tea.Batch(m.cmdLoadCompany(m.company.id), cmdClearStatus())
		case routes.Companies:
			m.list.loading = true
			return m, tea.Batch(m.cmdLoadList(m.list.data.page), cmdClearStatus())
		}
		return m, cmdClearStatus()

	case candidatesLoadedMsg:
		if m.match.Route != routes.CompanyDetail || !m.company.picking {
			return m, nil
		}
		if msg.err != nil {
			m.company.picking = false
			m.fail(msg.err)
			return m, nil
		}
		m.company.candidates = availableUsers(msg.users, m.company.id, m.company.users.Items)
		m.company.pickIdx = 0
		return m, nil

	case userAddedMsg:
		if m.match.Route != routes.CompanyDetail {
			return m, nil
		}
		m.company.adding = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.company.picking = false
		m.company.candidates = nil
		m.company.status = "User added"
		m.company.loading = true
		return m, tea.Batch(m.cmdLoadCompany(m.company.id), cmdClearStatus())

	case copiedMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.setStatus("Copied!")
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.setStatus("")
		return m, nil

	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil
	}

	if m.showCompanyForm {
		return m.updateCompanyForm(msg)
	}

	switch m.match.Route {
	case routes.Login:
		return m.updateLogin(msg)
	case routes.Dashboard:
		return m.updateDashboard(msg)
	case routes.Companies, routes.Users, routes.Jobs, routes.Tasks:
		return m.updateList(msg)
	case routes.CompanyDetail:
		return m.updateCompany(msg)
	case routes.TaskDetail:
		return m.updateTask(msg)
	}

	return m, nil
}

// navigate moves to path after passing it through the access guard.
func (m appModel) navigate(path string) (tea.Model, tea.Cmd) {
	target := routes.Guard(m.session, path)
	if target.Route == routes.NotFound {
		m.showErrorf("Page not found: " + path)
		if m.match.Route != routes.NotFound {
			return m, nil
		}
		target = routes.Guard(m.session, string(routes.Dashboard))
	}

	m.match = target
	m.showConfirm = false
	m.pendingDelete = ""
	m.showBuildInfo = false
	m.showCompanyForm = false
	m.user = models.User{}
	if m.session != nil {
		if user, ok := m.session.User(); ok {
			m.user = user
		}
	}

	switch target.Route {
	case routes.Login:
		m.login = newLoginModel()
		return m, textinput.Blink
	case routes.Dashboard:
		m.dashboard = newDashboardModel(m.user.Role)
		return m, m.cmdLoadDashboard()
	case routes.CompanyDetail:
		m.company = companyDetailModel{id: target.ID, loading: true}
		return m, m.cmdLoadCompany(target.ID)
	case routes.TaskDetail:
		m.task = newTaskDetailModel(target.ID)
		return m, m.cmdLoadTask(target.ID)
	}

	spec, ok := listSpecFor(target.Route, m.services)
	if !ok {
		return m, nil
	}
	m.list = newListModel(spec)
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList(0))
}

func (m appModel) logout() (tea.Model, tea.Cmd) {
	m.services.AuthService.Logout()
	m.notice = ""
	return m.navigate(string(routes.Login))
}

// fail reports err to the user. An expired session is not an error to show:
// the login screen explains it instead.
func (m *appModel) fail(err error) {
	if sessionExpired(err) {
		m.notice = app.MsgSessionExpired
		return
	}
	m.showErrorf(errorText(err))
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(status string) {
	m.list.status = status
	m.task.status = status
	m.company.status = status
}

func (m appModel) View() string {
	var body string

	switch {
	case m.showBuildInfo:
		body = m.buildInfoView()
	case m.showCompanyForm:
		body = m.companyForm.View()
	case m.match.Route == routes.Login:
		body = m.login.View(m.notice)
	case m.match.Route == routes.Dashboard:
		body = m.dashboard.View(m.user)
	case m.match.Route == routes.CompanyDetail:
		body = m.company.View()
	case m.match.Route == routes.TaskDetail:
		body = m.task.View()
	case m.match.Route == routes.NotFound:
		body = renderPage("WORKHUB", "Loading...", "")
	default:
		body = m.list.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) buildInfoView() string {
	info := m.services.AppInfoService
	if info == nil {
		return renderBuildInfoWindow(models.NewAppBuildInfo("", "", ""), "")
	}
	return renderBuildInfoWindow(info.BuildInfo(), info.BackendURL())
}

// ── screens ──────────────────────────────────────────────────────────────────

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down) && keyMsg.Type == tea.KeyDown:
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up) && keyMsg.Type == tea.KeyUp:
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email, password := m.login.values()
			if email == "" || password == "" {
				m.login.errMsg = "Email and password are required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.nav)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.dashboard.selected()
		if !ok {
			return m, nil
		}
		return m, navigateTo(string(item.Route))
	case key.Matches(keyMsg, keys.reload):
		m.dashboard.loading = true
		return m, m.cmdLoadDashboard()
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		return m.logout()
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigateTo(string(routes.Dashboard))
	case key.Matches(keyMsg, keys.logout):
		return m.logout()
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.data.rows)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.list.loading || !m.list.hasPrev() {
			return m, nil
		}
		m.list.loading = true
		m.list.idx = 0
		return m, m.cmdLoadList(m.list.data.page - 1)
	case key.Matches(keyMsg, keys.right):
		if m.list.loading || !m.list.hasNext() {
			return m, nil
		}
		m.list.loading = true
		m.list.idx = 0
		return m, m.cmdLoadList(m.list.data.page + 1)
	case key.Matches(keyMsg, keys.reload):
		m.list.loading = true
		return m, m.cmdLoadList(m.list.data.page)
	case key.Matches(keyMsg, keys.enter):
		r, ok := m.list.current()
		if !ok || m.list.spec.detailPath == nil {
			return m, nil
		}
		return m, navigateTo(m.list.spec.detailPath(r.id))
	case key.Matches(keyMsg, keys.copy):
		r, ok := m.list.current()
		if !ok {
			m.list.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopyToClipboard(r.id)
	case key.Matches(keyMsg, keys.delete):
		r, ok := m.list.current()
		if !ok || m.list.spec.remove == nil {
			return m, nil
		}
		m.pendingDelete = r.id
		m.confirm.message = strings.TrimSpace(r.cells[0])
		m.showConfirm = true
	case key.Matches(keyMsg, keys.status):
		r, ok := m.list.current()
		if !ok || m.list.spec.nextStatus == nil {
			return m, nil
		}
		return m, m.cmdNextStatus(r)
	case key.Matches(keyMsg, keys.create):
		if !m.list.spec.creatable {
			return m, nil
		}
		return m.openCompanyForm(nil)
	}
	return m, nil
}

func (m appModel) updateCompany(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.company.picking {
		return m.updateUserPicker(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigateTo(string(routes.Companies))
	case key.Matches(keyMsg, keys.edit):
		if m.company.loading {
			return m, nil
		}
		company := m.company.company
		return m.openCompanyForm(&company)
	case key.Matches(keyMsg, keys.addUser):
		if m.company.loading {
			return m, nil
		}
		m.company.picking = true
		m.company.candidates = nil
		return m, m.cmdLoadCandidates()
	case key.Matches(keyMsg, keys.reload):
		m.company.loading = true
		return m, m.cmdLoadCompany(m.company.id)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.company.id)
	}
	return m, nil
}

func (m appModel) updateTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.task.composing {
		if isKey {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.task.composing = false
				m.task.input.Blur()
				return m, nil
			case key.Matches(keyMsg, keys.submit):
				if m.task.sending {
					return m, nil
				}
				message := strings.TrimSpace(m.task.input.Value())
				if message == "" {
					m.task.status = "Comment is empty"
					return m, nil
				}
				m.task.sending = true
				return m, m.cmdAddComment(m.task.id, message)
			}
		}
		var cmd tea.Cmd
		m.task.input, cmd = m.task.input.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigateTo(string(routes.Tasks))
	case key.Matches(keyMsg, keys.comment):
		if m.task.loading {
			return m, nil
		}
		m.task.composing = true
		return m, m.task.input.Focus()
	case key.Matches(keyMsg, keys.status):
		if m.task.loading {
			return m, nil
		}
		return m, m.cmdNextTaskStatus(m.task.task)
	case key.Matches(keyMsg, keys.reload):
		m.task.loading = true
		return m, m.cmdLoadTask(m.task.id)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.task.id)
	}
	return m, nil
}

func (m appModel) updateUserPicker(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.company.adding {
			return m, nil
		}
		m.company.picking = false
		m.company.candidates = nil
	case key.Matches(keyMsg, keys.up):
		if m.company.pickIdx > 0 {
			m.company.pickIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.company.pickIdx < len(m.company.candidates)-1 {
			m.company.pickIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.company.adding || m.company.pickIdx >= len(m.company.candidates) {
			return m, nil
		}
		m.company.adding = true
		return m, m.cmdAddUser(m.company.candidates[m.company.pickIdx].ID)
	}
	return m, nil
}

func (m appModel) openCompanyForm(company *models.Company) (tea.Model, tea.Cmd) {
	m.companyForm = newCompanyFormModel(company)
	m.showCompanyForm = true
	return m, textinput.Blink
}

func (m appModel) updateCompanyForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.companyForm.submitting {
				return m, nil
			}
			m.showCompanyForm = false
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.companyForm = m.companyForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.companyForm = m.companyForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.unlink):
			if m.companyForm.originalLogo != "" {
				m.companyForm.removeLogo = !m.companyForm.removeLogo
			}
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.companyForm.submitting {
				return m, nil
			}
			in := m.companyForm.input()
			if in.name == "" || in.address == "" {
				m.companyForm.errMsg = "Name and address are required"
				return m, nil
			}
			m.companyForm.errMsg = ""
			m.companyForm.submitting = true
			return m, m.cmdSaveCompany(in)
		}
	}

	var cmd tea.Cmd
	m.companyForm.inputs[m.companyForm.focus], cmd = m.companyForm.inputs[m.companyForm.focus].Update(msg)
	return m, cmd
}
