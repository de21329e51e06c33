// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/workhub-console/models"
	"github.com/charmbracelet/bubbles/textarea"
)

const commentsPageSize = 20

type taskDetailModel struct {
	id        string
	task      models.Task
	comments  models.Page[models.TaskComment]
	loading   bool
	composing bool
	sending   bool
	input     textarea.Model
	status    string
}

func newTaskDetailModel(id string) taskDetailModel {
	ta := textarea.New()
	ta.Placeholder = "Write a comment"
	ta.CharLimit = 5000
	ta.SetWidth(60)
	ta.SetHeight(4)
	return taskDetailModel{id: id, loading: true, input: ta}
}

func (m taskDetailModel) View() string {
	if m.loading {
		return renderPage("TASK", "Loading...", "esc: back")
	}

	t := m.task
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Title    │ %s\n", t.Title))
	b.WriteString(fmt.Sprintf("Status   │ %s\n", t.Status))
	b.WriteString(fmt.Sprintf("Job      │ %s\n", valueOrDash(t.JobTitle)))
	b.WriteString(fmt.Sprintf("Company  │ %s\n", valueOrDash(t.CompanyName)))
	b.WriteString(fmt.Sprintf("Assignee │ %s\n", valueOrDash(t.AssigneeName)))
	b.WriteString(fmt.Sprintf("Start    │ %s\n", valueOrDash(t.StartDate)))
	b.WriteString(fmt.Sprintf("Due      │ %s\n", valueOrDash(t.DueDate)))
	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}

	b.WriteString(fmt.Sprintf("\nComments (%d)\n", m.comments.TotalElements))
	if len(m.comments.Items) == 0 {
		b.WriteString("  no comments yet\n")
	}
	for _, c := range m.comments.Items {
		b.WriteString(fmt.Sprintf("  %s · %s\n", valueOrDash(c.UserName), valueOrDash(c.CreatedAt)))
		for _, line := range strings.Split(c.Message, "\n") {
			b.WriteString("    " + line + "\n")
		}
	}

	hot := "a: add comment │ s: next status │ c: copy id │ r: reload │ esc: back"
	if m.composing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.sending {
			b.WriteString("[Sending...]\n")
		}
		hot = "ctrl+s: send │ esc: cancel"
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("TASK", strings.TrimRight(b.String(), "\n"), hot)
}

type companyDetailModel struct {
	id      string
	company models.Company
	users   models.Page[models.User]
	loading bool
	status  string

	// add-user picker
	picking    bool
	candidates []models.User
	pickIdx    int
	adding     bool
}

// availableUsers drops everyone who is already a member of the company.
func availableUsers(all []models.User, companyID string, members []models.User) []models.User {
	in := make(map[string]struct{}, len(members))
	for _, u := range members {
		in[u.ID] = struct{}{}
	}

	out := make([]models.User, 0, len(all))
	for _, u := range all {
		if _, ok := in[u.ID]; ok || u.CompanyID == companyID {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (m companyDetailModel) pickerView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Add a user to %s\n\n", m.company.Name))

	switch {
	case m.candidates == nil:
		b.WriteString("Loading...\n")
	case len(m.candidates) == 0:
		b.WriteString("No available users to add. All users are already members of this company.\n")
	default:
		rows := make([][]string, 0, len(m.candidates))
		for _, u := range m.candidates {
			rows = append(rows, []string{u.FullName, u.Email, string(u.Role)})
		}
		b.WriteString(renderTable([]string{"Name", "Email", "Role"}, rows, m.pickIdx))
		b.WriteString("\n")
	}
	if m.adding {
		b.WriteString("\n[Adding...]\n")
	}

	return renderPage("ADD USER", strings.TrimRight(b.String(), "\n"), "enter: add │ ↑/↓: navigate │ esc: cancel")
}

func (m companyDetailModel) View() string {
	if m.loading {
		return renderPage("COMPANY", "Loading...", "esc: back")
	}
	if m.picking {
		return m.pickerView()
	}

	c := m.company
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name    │ %s\n", c.Name))
	b.WriteString(fmt.Sprintf("Address │ %s\n", valueOrDash(c.Address)))
	b.WriteString(fmt.Sprintf("Logo    │ %s\n", valueOrDash(c.LogoURL)))
	b.WriteString(fmt.Sprintf("Created │ %s\n", valueOrDash(c.CreatedAt)))

	b.WriteString(fmt.Sprintf("\nMembers (%d)\n", m.users.TotalElements))
	rows := make([][]string, 0, len(m.users.Items))
	for _, u := range m.users.Items {
		rows = append(rows, []string{u.FullName, u.Email, string(u.Role)})
	}
	if len(rows) > 0 {
		b.WriteString(renderTable([]string{"Name", "Email", "Role"}, rows, -1))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("COMPANY", strings.TrimRight(b.String(), "\n"), "e: edit │ u: add user │ c: copy id │ r: reload │ esc: back")
}
