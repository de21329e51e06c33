// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import "github.com/MKhiriev/workhub-console/models"

// Session is the part of the session store the guard reads.
type Session interface {
	IsAuthenticated() bool
	User() (models.User, bool)
}

// Guard decides where a navigation to path ends up. It returns the resolved
// target, which differs from Resolve(path) when the user must be redirected:
//   - signed out users go to Login from every protected route;
//   - signed in users opening Login or Root land on Dashboard;
//   - users lacking the route's role land on Dashboard.
//
// NotFound is returned unchanged so the caller can render its own message.
func Guard(s Session, path string) Match {
	m := Resolve(path)
	authenticated := s != nil && s.IsAuthenticated()

	switch m.Route {
	case NotFound:
		return m
	case Login:
		if authenticated {
			return Match{Route: Dashboard}
		}
		return m
	case Root:
		if !authenticated {
			return Match{Route: Login}
		}
		return Match{Route: Dashboard}
	}

	if !authenticated {
		return Match{Route: Login}
	}

	user, ok := s.User()
	if !ok || !Allowed(user.Role, m.Route) {
		return Match{Route: Dashboard}
	}
	return m
}
