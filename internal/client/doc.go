// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin panel runtime.
//
// It runs the terminal UI over the view binders and, when configured, the
// background refresh worker, and tears both down together.
package client
