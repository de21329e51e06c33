// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/models"
	"golang.org/x/sync/errgroup"
)

// countPage asks for a single element; only totalElements is read.
var countPage = models.PageParams{Page: 0, Size: 1}

const (
	LabelCompanies = "Companies"
	LabelUsers     = "Users"
	LabelJobs      = "Jobs"
	LabelTasks     = "Tasks"
	LabelMyTasks   = "My tasks"
)

type counter struct {
	label string
	count func(ctx context.Context) (int64, error)
}

type dashboardService struct {
	adapters *adapter.Adapters
	session  SessionManager
	logger   *logger.Logger
}

func NewDashboardService(adapters *adapter.Adapters, sess SessionManager, logger *logger.Logger) DashboardService {
	return &dashboardService{adapters: adapters, session: sess, logger: logger}
}

// Summary fetches every counter visible to the signed-in user concurrently.
// The first failure cancels the remaining requests.
func (s *dashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	user, ok := s.session.User()
	if !ok {
		return models.DashboardSummary{}, ErrNotSignedIn
	}

	counters := s.countersFor(user)
	totals := make([]int64, len(counters))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range counters {
		g.Go(func() error {
			total, err := c.count(gctx)
			if err != nil {
				return err
			}
			totals[i] = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*dashboardService.Summary").Msg("failed to load dashboard")
		return models.DashboardSummary{}, err
	}

	summary := models.DashboardSummary{User: user, Counters: make([]models.DashboardCounter, len(counters))}
	for i, c := range counters {
		summary.Counters[i] = models.DashboardCounter{Label: c.label, Total: totals[i]}
	}
	return summary, nil
}

// countersFor picks what a role may see: admins see everything, managers
// their company, staff their company's jobs and their own tasks.
func (s *dashboardService) countersFor(user models.User) []counter {
	a := s.adapters

	switch user.Role {
	case models.RoleAdmin:
		return []counter{
			{LabelCompanies, func(ctx context.Context) (int64, error) {
				return total(a.Companies.ListCompanies(ctx, countPage))
			}},
			{LabelUsers, func(ctx context.Context) (int64, error) {
				return total(a.Users.ListUsers(ctx, countPage))
			}},
			{LabelJobs, func(ctx context.Context) (int64, error) {
				return total(a.Jobs.ListJobs(ctx, models.JobFilter{}, countPage))
			}},
			{LabelTasks, func(ctx context.Context) (int64, error) {
				return total(a.Tasks.ListTasks(ctx, models.TaskFilter{}, countPage))
			}},
		}

	case models.RoleManager:
		return []counter{
			{LabelUsers, func(ctx context.Context) (int64, error) {
				if user.CompanyID == "" {
					return total(a.Users.ListUsers(ctx, countPage))
				}
				return total(a.Users.ListUsersByCompany(ctx, user.CompanyID, countPage))
			}},
			{LabelJobs, func(ctx context.Context) (int64, error) {
				return total(a.Jobs.ListJobs(ctx, models.JobFilter{CompanyID: user.CompanyID}, countPage))
			}},
			{LabelTasks, func(ctx context.Context) (int64, error) {
				return total(a.Tasks.ListTasks(ctx, models.TaskFilter{CompanyID: user.CompanyID}, countPage))
			}},
		}

	default:
		return []counter{
			{LabelJobs, func(ctx context.Context) (int64, error) {
				return total(a.Jobs.ListJobs(ctx, models.JobFilter{CompanyID: user.CompanyID}, countPage))
			}},
			{LabelMyTasks, func(ctx context.Context) (int64, error) {
				return total(a.Tasks.ListTasks(ctx, models.TaskFilter{AssigneeID: user.ID}, countPage))
			}},
		}
	}
}

func total[T any](page models.Page[T], err error) (int64, error) {
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return page.TotalElements, nil
}
