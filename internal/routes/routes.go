// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package routes names the screens of the console and decides which of them
// a signed-in user may open.
//
// Paths mirror the WorkHub web client so that the gateway's login redirect
// ("/login") and links copied from the browser resolve to the same screens.
package routes

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/workhub-console/models"
)

// Route identifies a screen. Detail routes carry an id in the path.
type Route string

const (
	Root          Route = "/"
	Login         Route = "/login"
	Dashboard     Route = "/dashboard"
	Companies     Route = "/companies"
	CompanyDetail Route = "/companies/{id}"
	Users         Route = "/users"
	Jobs          Route = "/jobs"
	Tasks         Route = "/tasks"
	TaskDetail    Route = "/tasks/{id}"
	NotFound      Route = ""
)

// Match is a resolved path.
type Match struct {
	Route Route
	ID    string
}

// CompanyPath renders the path of a company detail screen.
func CompanyPath(id string) string {
	return string(Companies) + "/" + url.PathEscape(id)
}

// TaskPath renders the path of a task detail screen.
func TaskPath(id string) string {
	return string(Tasks) + "/" + url.PathEscape(id)
}

// Resolve parses path into a route. Query strings, fragments and a trailing
// slash are ignored. Unknown paths resolve to NotFound.
func Resolve(path string) Match {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}

	switch Route(path) {
	case "", Root:
		return Match{Route: Root}
	case Login, Dashboard, Companies, Users, Jobs, Tasks:
		return Match{Route: Route(path)}
	}

	parent, id, ok := splitDetail(path)
	if !ok {
		return Match{Route: NotFound}
	}
	switch Route(parent) {
	case Companies:
		return Match{Route: CompanyDetail, ID: id}
	case Tasks:
		return Match{Route: TaskDetail, ID: id}
	}
	return Match{Route: NotFound}
}

func splitDetail(path string) (parent, id string, ok bool) {
	i := strings.LastIndex(path, "/")
	if i <= 0 {
		return "", "", false
	}
	parent, raw := path[:i], path[i+1:]
	id, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(id) == "" {
		return "", "", false
	}
	return parent, id, true
}

// requiredRoles lists the roles a route needs. Routes not listed are open to
// every authenticated user.
var requiredRoles = map[Route][]models.UserRole{
	Companies:     {models.RoleAdmin},
	CompanyDetail: {models.RoleAdmin},
	Users:         {models.RoleAdmin, models.RoleManager},
}

// Allowed reports whether a user with role may open route.
func Allowed(role models.UserRole, route Route) bool {
	roles, ok := requiredRoles[route]
	if !ok {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
