// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console runtime.
//
// It wires the local session store, the HTTP gateway, services, the session
// watcher and the terminal UI into a single process lifecycle.
package client
