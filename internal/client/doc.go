// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the runtime behind the sessionctl command line tool.
//
// [App] drives the client session services against a running session API
// with an in-process volatile secret. The package-level helpers generate key
// mask secrets and probe the session cache directly, without the API.
package client
