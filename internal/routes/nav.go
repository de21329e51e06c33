// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import "github.com/MKhiriev/workhub-console/models"

// NavItem is an entry of the main menu.
type NavItem struct {
	Label string
	Route Route
}

var navItems = []NavItem{
	{Label: "Dashboard", Route: Dashboard},
	{Label: "Companies", Route: Companies},
	{Label: "Users", Route: Users},
	{Label: "Jobs", Route: Jobs},
	{Label: "Tasks", Route: Tasks},
}

// NavItems returns the menu entries visible to role, in menu order.
func NavItems(role models.UserRole) []NavItem {
	items := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if Allowed(role, item.Route) {
			items = append(items, item)
		}
	}
	return items
}
