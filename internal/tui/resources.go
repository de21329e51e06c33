// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/internal/service"
	"github.com/MKhiriev/workhub-console/models"
)

const listPageSize = 10

// listSpec describes how a list screen loads and acts on its rows. Nil
// functions disable the matching key.
type listSpec struct {
	title   string
	headers []string
	load    func(ctx context.Context, user models.User, page models.PageParams) (listPage, error)

	detailPath func(id string) string
	remove     func(ctx context.Context, id string) error
	nextStatus func(ctx context.Context, r row) error

	// creatable lists open the company form on "n".
	creatable bool
}

func pageRows[T any](p models.Page[T], toRow func(T) row) listPage {
	rows := make([]row, 0, len(p.Items))
	for _, item := range p.Items {
		rows = append(rows, toRow(item))
	}
	return listPage{rows: rows, page: p.Page, totalPages: p.TotalPages, total: p.TotalElements}
}

// listSpecFor returns the list screen of route, or false for routes that
// are not lists.
func listSpecFor(route routes.Route, svc *service.Services) (listSpec, bool) {
	switch route {
	case routes.Companies:
		return companySpec(svc), true
	case routes.Users:
		return userSpec(svc), true
	case routes.Jobs:
		return jobSpec(svc), true
	case routes.Tasks:
		return taskSpec(svc), true
	}
	return listSpec{}, false
}

func companySpec(svc *service.Services) listSpec {
	return listSpec{
		title:   "COMPANIES",
		headers: []string{"Name", "Address", "Created"},
		load: func(ctx context.Context, _ models.User, page models.PageParams) (listPage, error) {
			p, err := svc.CompanyService.List(ctx, page)
			if err != nil {
				return listPage{}, err
			}
			return pageRows(p, func(c models.Company) row {
				return row{id: c.ID, cells: []string{fitText(c.Name, 30), fitText(c.Address, 40), valueOrDash(c.CreatedAt)}}
			}), nil
		},
		detailPath: routes.CompanyPath,
		remove:     svc.CompanyService.Delete,
		creatable:  true,
	}
}

// userSpec lists the whole directory for admins and the own company for
// everyone else.
func userSpec(svc *service.Services) listSpec {
	return listSpec{
		title:   "USERS",
		headers: []string{"Name", "Email", "Role", "Active"},
		load: func(ctx context.Context, user models.User, page models.PageParams) (listPage, error) {
			companyID := user.CompanyID
			if user.Role == models.RoleAdmin {
				companyID = ""
			}
			p, err := svc.UserService.List(ctx, companyID, page)
			if err != nil {
				return listPage{}, err
			}
			return pageRows(p, func(u models.User) row {
				return row{id: u.ID, cells: []string{fitText(u.FullName, 30), u.Email, string(u.Role), yesNo(u.IsActive)}}
			}), nil
		},
		remove: svc.UserService.Delete,
	}
}

func jobSpec(svc *service.Services) listSpec {
	return listSpec{
		title:   "JOBS",
		headers: []string{"Title", "Status", "Priority", "Deadline", "Owner"},
		load: func(ctx context.Context, user models.User, page models.PageParams) (listPage, error) {
			var filter models.JobFilter
			if user.Role != models.RoleAdmin {
				filter.CompanyID = user.CompanyID
			}
			p, err := svc.JobService.List(ctx, filter, page)
			if err != nil {
				return listPage{}, err
			}
			return pageRows(p, func(j models.Job) row {
				return row{id: j.ID, status: string(j.Status), cells: []string{
					fitText(j.Title, 30), string(j.Status), string(j.Priority), valueOrDash(j.Deadline), valueOrDash(j.OwnerName),
				}}
			}), nil
		},
		remove: svc.JobService.Delete,
		nextStatus: func(ctx context.Context, r row) error {
			next := nextOf(models.AllJobStatuses, models.JobStatus(r.status))
			_, err := svc.JobService.UpdateStatus(ctx, r.id, next)
			return err
		},
	}
}

// taskSpec shows admins every task, managers their company's board and
// staff the tasks assigned to them.
func taskSpec(svc *service.Services) listSpec {
	return listSpec{
		title:   "TASKS",
		headers: []string{"Title", "Status", "Job", "Assignee", "Due"},
		load: func(ctx context.Context, user models.User, page models.PageParams) (listPage, error) {
			var filter models.TaskFilter
			switch user.Role {
			case models.RoleAdmin:
			case models.RoleManager:
				filter.CompanyID = user.CompanyID
			default:
				filter.AssigneeID = user.ID
			}
			p, err := svc.TaskService.List(ctx, filter, page)
			if err != nil {
				return listPage{}, err
			}
			return pageRows(p, func(t models.Task) row {
				return row{id: t.ID, status: string(t.Status), cells: []string{
					fitText(t.Title, 30), string(t.Status), fitText(valueOrDash(t.JobTitle), 20), valueOrDash(t.AssigneeName), valueOrDash(t.DueDate),
				}}
			}), nil
		},
		detailPath: routes.TaskPath,
		remove:     svc.TaskService.Delete,
		nextStatus: func(ctx context.Context, r row) error {
			next := nextOf(models.AllTaskStatuses, models.TaskStatus(r.status))
			_, err := svc.TaskService.UpdateStatus(ctx, r.id, next)
			return err
		},
	}
}

// nextOf returns the element after current, wrapping around. Unknown values
// start from the first element.
func nextOf[T comparable](all []T, current T) T {
	for i, v := range all {
		if v == current {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
