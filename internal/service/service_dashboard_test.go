// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/mock"
	"github.com/MKhiriev/workhub-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	companies *mock.MockCompanyAdapter
	users     *mock.MockUserAdapter
	jobs      *mock.MockJobAdapter
	tasks     *mock.MockTaskAdapter
	session   *mock.MockSessionManager
}

func newTestDashboardSvc(t *testing.T) (DashboardService, dashboardMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		companies: mock.NewMockCompanyAdapter(ctrl),
		users:     mock.NewMockUserAdapter(ctrl),
		jobs:      mock.NewMockJobAdapter(ctrl),
		tasks:     mock.NewMockTaskAdapter(ctrl),
		session:   mock.NewMockSessionManager(ctrl),
	}
	adapters := &adapter.Adapters{Companies: m.companies, Users: m.users, Jobs: m.jobs, Tasks: m.tasks}
	return NewDashboardService(adapters, m.session, logger.Nop()), m
}

func pageOf[T any](total int64) models.Page[T] {
	return models.Page[T]{TotalElements: total}
}

func TestDashboardService_Admin(t *testing.T) {
	svc, m := newTestDashboardSvc(t)
	admin := models.User{ID: "u-0", Role: models.RoleAdmin}

	m.session.EXPECT().User().Return(admin, true)
	m.companies.EXPECT().ListCompanies(gomock.Any(), countPage).Return(pageOf[models.Company](4), nil)
	m.users.EXPECT().ListUsers(gomock.Any(), countPage).Return(pageOf[models.User](12), nil)
	m.jobs.EXPECT().ListJobs(gomock.Any(), models.JobFilter{}, countPage).Return(pageOf[models.Job](30), nil)
	m.tasks.EXPECT().ListTasks(gomock.Any(), models.TaskFilter{}, countPage).Return(pageOf[models.Task](95), nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, admin, summary.User)
	assert.Equal(t, []models.DashboardCounter{
		{Label: LabelCompanies, Total: 4},
		{Label: LabelUsers, Total: 12},
		{Label: LabelJobs, Total: 30},
		{Label: LabelTasks, Total: 95},
	}, summary.Counters)
}

func TestDashboardService_Manager(t *testing.T) {
	svc, m := newTestDashboardSvc(t)

	m.session.EXPECT().User().Return(testUser, true)
	m.users.EXPECT().ListUsersByCompany(gomock.Any(), "c-1", countPage).Return(pageOf[models.User](5), nil)
	m.jobs.EXPECT().ListJobs(gomock.Any(), models.JobFilter{CompanyID: "c-1"}, countPage).Return(pageOf[models.Job](2), nil)
	m.tasks.EXPECT().ListTasks(gomock.Any(), models.TaskFilter{CompanyID: "c-1"}, countPage).Return(pageOf[models.Task](7), nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Counters, 3)
	assert.Equal(t, LabelUsers, summary.Counters[0].Label)
	assert.EqualValues(t, 7, summary.Counters[2].Total)
}

func TestDashboardService_Staff(t *testing.T) {
	svc, m := newTestDashboardSvc(t)
	staff := models.User{ID: "u-7", CompanyID: "c-1", Role: models.RoleStaff}

	m.session.EXPECT().User().Return(staff, true)
	m.jobs.EXPECT().ListJobs(gomock.Any(), models.JobFilter{CompanyID: "c-1"}, countPage).Return(pageOf[models.Job](2), nil)
	m.tasks.EXPECT().ListTasks(gomock.Any(), models.TaskFilter{AssigneeID: "u-7"}, countPage).Return(pageOf[models.Task](3), nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.DashboardCounter{
		{Label: LabelJobs, Total: 2},
		{Label: LabelMyTasks, Total: 3},
	}, summary.Counters)
}

func TestDashboardService_FailureCancelsOthers(t *testing.T) {
	svc, m := newTestDashboardSvc(t)
	staff := models.User{ID: "u-7", CompanyID: "c-1", Role: models.RoleStaff}
	boom := &gateway.APIError{Message: "Unable to connect to the server. Please check your network.", Kind: gateway.KindNetwork}

	m.session.EXPECT().User().Return(staff, true)
	m.jobs.EXPECT().ListJobs(gomock.Any(), gomock.Any(), countPage).Return(models.Page[models.Job]{}, boom)
	m.tasks.EXPECT().ListTasks(gomock.Any(), gomock.Any(), countPage).
		DoAndReturn(func(ctx context.Context, _ models.TaskFilter, _ models.PageParams) (models.Page[models.Task], error) {
			<-ctx.Done()
			return models.Page[models.Task]{}, ctx.Err()
		})

	_, err := svc.Summary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrNetwork)
	assert.Equal(t, boom.Message, MessageOf(err, "fallback"))
}

func TestDashboardService_SignedOut(t *testing.T) {
	svc, m := newTestDashboardSvc(t)
	m.session.EXPECT().User().Return(models.User{}, false)

	_, err := svc.Summary(context.Background())
	assert.True(t, errors.Is(err, ErrNotSignedIn))
}
