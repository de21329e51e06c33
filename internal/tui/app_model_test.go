// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/workhub-console/internal/app"
	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/mock"
	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/internal/service"
	"github.com/MKhiriev/workhub-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSession struct {
	user   models.User
	authed bool
}

func (s *fakeSession) IsAuthenticated() bool { return s.authed }

func (s *fakeSession) User() (models.User, bool) { return s.user, s.authed }

type testDeps struct {
	auth      *mock.MockAuthService
	companies *mock.MockCompanyService
	users     *mock.MockUserService
	jobs      *mock.MockJobService
	tasks     *mock.MockTaskService
	comments  *mock.MockCommentService
	files     *mock.MockFileService
	dashboard *mock.MockDashboardService
	session   *fakeSession
}

func newTestModel(t *testing.T, session *fakeSession) (appModel, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := testDeps{
		auth:      mock.NewMockAuthService(ctrl),
		companies: mock.NewMockCompanyService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		jobs:      mock.NewMockJobService(ctrl),
		tasks:     mock.NewMockTaskService(ctrl),
		comments:  mock.NewMockCommentService(ctrl),
		files:     mock.NewMockFileService(ctrl),
		dashboard: mock.NewMockDashboardService(ctrl),
		session:   session,
	}
	svc := &service.Services{
		AuthService:      d.auth,
		CompanyService:   d.companies,
		UserService:      d.users,
		JobService:       d.jobs,
		TaskService:      d.tasks,
		CommentService:   d.comments,
		FileService:      d.files,
		DashboardService: d.dashboard,
	}
	return newAppModel(context.Background(), svc, session, ""), d
}

var (
	adminUser = models.User{ID: "u-1", Email: "root@example.com", FullName: "Root", Role: models.RoleAdmin}
	staffUser = models.User{ID: "u-3", CompanyID: "c-1", Email: "sam@example.com", FullName: "Sam", Role: models.RoleStaff}
)

func signedIn(u models.User) *fakeSession { return &fakeSession{user: u, authed: true} }

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(appModel)
	require.True(t, ok)
	return result, cmd
}

// drain runs cmd and feeds every resulting message back into the model.
// Batches are expanded; messages the model does not produce itself are kept
// in the returned slice.
func drain(t *testing.T, m appModel, cmd tea.Cmd) (appModel, []tea.Msg) {
	t.Helper()
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		seen = append(seen, msg)
		switch msg.(type) {
		case navigateMsg, redirectMsg, loginDoneMsg, dashboardLoadedMsg, listLoadedMsg,
			companyLoadedMsg, taskLoadedMsg:
			var next tea.Cmd
			m, next = update(t, m, msg)
			queue = append(queue, next)
		}
	}
	return m, seen
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func taskPage(page, totalPages int, tasks ...models.Task) models.Page[models.Task] {
	return models.Page[models.Task]{Items: tasks, Page: page, Size: listPageSize, TotalElements: int64(len(tasks)), TotalPages: totalPages}
}

// ── navigation ───────────────────────────────────────────────────────────────

func TestAppModel_StartSignedOut_ShowsLogin(t *testing.T) {
	m, _ := newTestModel(t, &fakeSession{})

	m, _ = drain(t, m, m.Init())

	assert.Equal(t, routes.Login, m.match.Route)
	assert.Empty(t, m.notice)
	assert.Contains(t, m.View(), "Email")
}

func TestAppModel_GuardRedirectsMissingRole(t *testing.T) {
	m, d := newTestModel(t, signedIn(staffUser))
	d.dashboard.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{User: staffUser}, nil)

	m, _ = drain(t, m, navigateTo("/companies"))

	assert.Equal(t, routes.Dashboard, m.match.Route)
	assert.Equal(t, staffUser, m.user)
}

func TestAppModel_UnknownPath_ShowsErrorAndStays(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.dashboard.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{}, nil)
	m, _ = drain(t, m, m.Init())
	require.Equal(t, routes.Dashboard, m.match.Route)

	m, _ = update(t, m, navigateMsg{path: "/nowhere"})

	assert.Equal(t, routes.Dashboard, m.match.Route)
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "/nowhere")

	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.showError)
}

func TestAppModel_RedirectToLogin_SetsSessionNotice(t *testing.T) {
	session := signedIn(adminUser)
	m, d := newTestModel(t, session)
	d.dashboard.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{}, nil)
	m, _ = drain(t, m, m.Init())

	session.authed = false
	m, _ = update(t, m, redirectMsg{path: "/login"})

	assert.Equal(t, routes.Login, m.match.Route)
	assert.Equal(t, app.MsgSessionExpired, m.notice)
	assert.Contains(t, m.View(), app.MsgSessionExpired)
}

// ── login ────────────────────────────────────────────────────────────────────

func TestAppModel_LoginSuccess_OpensDashboard(t *testing.T) {
	session := &fakeSession{}
	m, d := newTestModel(t, session)
	m, _ = drain(t, m, m.Init())
	require.Equal(t, routes.Login, m.match.Route)

	d.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "root@example.com", Password: "secret1"}).
		DoAndReturn(func(context.Context, models.LoginRequest) (models.User, error) {
			session.user, session.authed = adminUser, true
			return adminUser, nil
		})
	summary := models.DashboardSummary{User: adminUser, Counters: []models.DashboardCounter{{Label: "Companies", Total: 4}}}
	d.dashboard.EXPECT().Summary(gomock.Any()).Return(summary, nil)

	m.login.inputs[0].SetValue(" root@example.com ")
	m.login.inputs[1].SetValue("secret1")
	m, cmd := update(t, m, keyPress("enter"))
	require.True(t, m.login.submitting)

	m, _ = drain(t, m, cmd)

	assert.Equal(t, routes.Dashboard, m.match.Route)
	assert.Equal(t, adminUser, m.user)
	assert.False(t, m.dashboard.loading)
	assert.Equal(t, summary, m.dashboard.summary)
	assert.Contains(t, m.View(), "Companies")
}

func TestAppModel_LoginFailure_ShowsServerMessage(t *testing.T) {
	m, d := newTestModel(t, &fakeSession{})
	m, _ = drain(t, m, m.Init())

	d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, &gateway.APIError{Status: http.StatusUnauthorized, Message: "Invalid email or password", SessionExpired: true})

	m.login.inputs[0].SetValue("root@example.com")
	m.login.inputs[1].SetValue("wrong")
	m, cmd := update(t, m, keyPress("enter"))
	m, _ = drain(t, m, cmd)

	assert.Equal(t, routes.Login, m.match.Route)
	assert.Equal(t, "Invalid email or password", m.login.errMsg)
	assert.False(t, m.login.submitting)
	assert.False(t, m.showError)
}

func TestAppModel_LoginFailure_RedirectKeepsForm(t *testing.T) {
	m, _ := newTestModel(t, &fakeSession{})
	m, _ = drain(t, m, m.Init())
	m.login.inputs[0].SetValue("root@example.com")
	m.login.inputs[1].SetValue("wrong")
	m.login.submitting = true

	badCredentials := &gateway.APIError{Status: http.StatusUnauthorized, Message: "Invalid email or password", SessionExpired: true}
	m, _ = update(t, m, loginDoneMsg{err: badCredentials})
	m, cmd := update(t, m, redirectMsg{path: "/login"})

	assert.Nil(t, cmd)
	assert.Equal(t, routes.Login, m.match.Route)
	assert.Equal(t, "Invalid email or password", m.login.errMsg)
	assert.Equal(t, "root@example.com", m.login.inputs[0].Value())
	assert.Empty(t, m.notice)
}

func TestAppModel_LoginRedirectBeforeResult_KeepsForm(t *testing.T) {
	m, _ := newTestModel(t, &fakeSession{})
	m, _ = drain(t, m, m.Init())
	m.login.inputs[0].SetValue("root@example.com")
	m.login.submitting = true

	m, _ = update(t, m, redirectMsg{path: "/login"})
	m, _ = update(t, m, loginDoneMsg{err: &gateway.APIError{Status: http.StatusUnauthorized, Message: "Invalid email or password", SessionExpired: true}})

	assert.Equal(t, "Invalid email or password", m.login.errMsg)
	assert.Equal(t, "root@example.com", m.login.inputs[0].Value())
	assert.False(t, m.login.submitting)
}

func TestAppModel_LoginEmptyFields_NoRequest(t *testing.T) {
	m, _ := newTestModel(t, &fakeSession{})
	m, _ = drain(t, m, m.Init())

	m, cmd := update(t, m, keyPress("enter"))

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.login.errMsg)
	assert.False(t, m.login.submitting)
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestAppModel_ServerError_OverlayShowsMessageOnly(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.dashboard.EXPECT().Summary(gomock.Any()).
		Return(models.DashboardSummary{}, &gateway.APIError{Status: http.StatusInternalServerError, Message: "Database unavailable"})

	m, _ = drain(t, m, m.Init())

	require.True(t, m.showError)
	assert.Equal(t, "Database unavailable", m.errorOverlay.message)
}

func TestAppModel_PlainError_FallsBackToErrorText(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.dashboard.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{}, errors.New("count: boom"))

	m, _ = drain(t, m, m.Init())

	require.True(t, m.showError)
	assert.Equal(t, "count: boom", m.errorOverlay.message)
}

func TestAppModel_SessionExpiredError_NoOverlay(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.dashboard.EXPECT().Summary(gomock.Any()).
		Return(models.DashboardSummary{}, &gateway.APIError{Status: http.StatusUnauthorized, Message: "Unauthorized", SessionExpired: true})

	m, _ = drain(t, m, m.Init())

	assert.False(t, m.showError)
	assert.Equal(t, app.MsgSessionExpired, m.notice)
}

// ── lists ────────────────────────────────────────────────────────────────────

func TestAppModel_TaskList_PagesForward(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	first := taskPage(0, 3, models.Task{ID: "t-1", Title: "Paint", Status: models.TaskTodo})
	second := taskPage(1, 3, models.Task{ID: "t-2", Title: "Plaster", Status: models.TaskDoing})

	gomock.InOrder(
		d.tasks.EXPECT().List(gomock.Any(), models.TaskFilter{}, models.PageParams{Page: 0, Size: listPageSize}).Return(first, nil),
		d.tasks.EXPECT().List(gomock.Any(), models.TaskFilter{}, models.PageParams{Page: 1, Size: listPageSize}).Return(second, nil),
	)

	m, _ = drain(t, m, navigateTo("/tasks"))
	require.Equal(t, routes.Tasks, m.match.Route)
	require.Len(t, m.list.data.rows, 1)
	assert.False(t, m.list.hasPrev())

	m, cmd := update(t, m, keyPress("right"))
	require.NotNil(t, cmd)
	m, _ = drain(t, m, cmd)

	assert.Equal(t, 1, m.list.data.page)
	r, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "t-2", r.id)
	assert.True(t, m.list.hasPrev())
}

func TestAppModel_TaskList_StaffSeesAssignedOnly(t *testing.T) {
	m, d := newTestModel(t, signedIn(staffUser))
	d.tasks.EXPECT().
		List(gomock.Any(), models.TaskFilter{AssigneeID: staffUser.ID}, gomock.Any()).
		Return(taskPage(0, 1), nil)

	m, _ = drain(t, m, navigateTo("/tasks"))

	assert.Equal(t, routes.Tasks, m.match.Route)
	assert.Empty(t, m.list.data.rows)
}

func TestAppModel_StaleListResultIgnored(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.dashboard.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{}, nil)
	m, _ = drain(t, m, m.Init())

	m, _ = update(t, m, listLoadedMsg{route: routes.Tasks, err: errors.New("late")})

	assert.Equal(t, routes.Dashboard, m.match.Route)
	assert.False(t, m.showError)
}

func TestAppModel_DeleteAsksForConfirmation(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.tasks.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(taskPage(0, 1, models.Task{ID: "t-1", Title: "Paint", Status: models.TaskTodo}), nil)
	m, _ = drain(t, m, navigateTo("/tasks"))

	m, cmd := update(t, m, keyPress("d"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Equal(t, "t-1", m.pendingDelete)

	d.tasks.EXPECT().Delete(gomock.Any(), "t-1").Return(nil)
	m, cmd = update(t, m, keyPress("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	msg := cmd()
	deleted, ok := msg.(itemDeletedMsg)
	require.True(t, ok)
	assert.NoError(t, deleted.err)
	assert.Equal(t, routes.Tasks, deleted.route)
}

func TestAppModel_DeleteCancelled(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.tasks.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(taskPage(0, 1, models.Task{ID: "t-1", Title: "Paint"}), nil)
	m, _ = drain(t, m, navigateTo("/tasks"))

	m, _ = update(t, m, keyPress("d"))
	m, cmd := update(t, m, keyPress("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pendingDelete)
}

func TestAppModel_CopyID(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, d := newTestModel(t, signedIn(adminUser))
	d.tasks.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(taskPage(0, 1, models.Task{ID: "t-9", Title: "Paint"}), nil)
	m, _ = drain(t, m, navigateTo("/tasks"))

	m, cmd := update(t, m, keyPress("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "t-9", copied)
	assert.Equal(t, "Copied!", m.list.status)
}

// ── task detail ──────────────────────────────────────────────────────────────

func TestAppModel_TaskDetail_AddComment(t *testing.T) {
	m, d := newTestModel(t, signedIn(staffUser))
	task := models.Task{ID: "t-1", Title: "Paint", Status: models.TaskDoing, AssigneeID: staffUser.ID}
	d.tasks.EXPECT().Get(gomock.Any(), "t-1").Return(task, nil).Times(2)
	d.comments.EXPECT().ListByTask(gomock.Any(), "t-1", gomock.Any()).Return(models.Page[models.TaskComment]{}, nil).Times(2)

	m, _ = drain(t, m, navigateTo(routes.TaskPath("t-1")))
	require.Equal(t, routes.TaskDetail, m.match.Route)
	assert.Equal(t, task, m.task.task)

	m, _ = update(t, m, keyPress("a"))
	require.True(t, m.task.composing)
	m.task.input.SetValue("  done for today ")

	d.comments.EXPECT().Add(gomock.Any(), "t-1", "done for today").
		Return(models.TaskComment{ID: "cm-1", TaskID: "t-1", Message: "done for today"}, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, m.task.sending)

	m, cmd = update(t, m, cmd())
	assert.False(t, m.task.composing)
	assert.Equal(t, "Comment added", m.task.status)

	// reload of the task; the status clear tick is not run.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	m, _ = update(t, m, batch[0]())
	assert.False(t, m.task.loading)
}

func TestAppModel_TaskDetail_EscReturnsToList(t *testing.T) {
	m, d := newTestModel(t, signedIn(adminUser))
	d.tasks.EXPECT().Get(gomock.Any(), "t-1").Return(models.Task{ID: "t-1"}, nil)
	d.comments.EXPECT().ListByTask(gomock.Any(), "t-1", gomock.Any()).Return(models.Page[models.TaskComment]{}, nil)
	m, _ = drain(t, m, navigateTo("/tasks/t-1"))

	_, cmd := update(t, m, keyPress("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, navigateMsg{path: "/tasks"}, cmd())
}

// ── logout ───────────────────────────────────────────────────────────────────

func TestAppModel_Logout(t *testing.T) {
	session := signedIn(adminUser)
	m, d := newTestModel(t, session)
	d.dashboard.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{}, nil)
	m, _ = drain(t, m, m.Init())

	d.auth.EXPECT().Logout().Do(func() { session.authed = false })
	m, _ = update(t, m, keyPress("x"))

	assert.Equal(t, routes.Login, m.match.Route)
	assert.Empty(t, m.notice)
}

// ── navigator ────────────────────────────────────────────────────────────────

func TestNavigator_RemembersLastPathUntilAttached(t *testing.T) {
	n := NewNavigator()

	n.Navigate("/tasks")
	n.Navigate("/login")

	n.mu.Lock()
	defer n.mu.Unlock()
	assert.Equal(t, "/login", n.pending)
	assert.Nil(t, n.program)
}
