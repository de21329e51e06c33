// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/workhub-console/internal/routes"
	"github.com/MKhiriev/workhub-console/models"
)

type dashboardModel struct {
	nav     []routes.NavItem
	idx     int
	summary models.DashboardSummary
	loading bool
}

func newDashboardModel(role models.UserRole) dashboardModel {
	return dashboardModel{nav: routes.NavItems(role), loading: true}
}

func (m dashboardModel) selected() (routes.NavItem, bool) {
	if m.idx < 0 || m.idx >= len(m.nav) {
		return routes.NavItem{}, false
	}
	return m.nav[m.idx], true
}

func (m dashboardModel) View(user models.User) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Signed in as %s <%s> (%s)\n", valueOrDash(user.FullName), user.Email, user.Role))
	if user.CompanyName != "" {
		b.WriteString("Company: " + user.CompanyName + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.summary.Counters) == 0:
		b.WriteString("No data\n")
	default:
		for _, c := range m.summary.Counters {
			b.WriteString(fmt.Sprintf("%-10s %d\n", c.Label, c.Total))
		}
	}

	b.WriteString("\nMenu\n")
	for i, item := range m.nav {
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + item.Label))
		} else {
			b.WriteString("  " + item.Label)
		}
		b.WriteString("\n")
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ r: reload │ v: version │ x: sign out")
}
