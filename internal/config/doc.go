// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation for
// the WorkHub console.
//
// Configuration is assembled from several sources. Sources are merged with
// mergo without overriding, so the first source that sets a field wins:
//  1. Environment variables (WORKHUB_ prefix)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
