// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DashboardCounter is one tile of the dashboard.
type DashboardCounter struct {
	Label string
	Total int64
}

// DashboardSummary is what the dashboard shows to a signed-in user. Counters
// depend on the user's role and keep a fixed order.
type DashboardSummary struct {
	User     User
	Counters []DashboardCounter
}
