// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the client registry application: configuration,
// local storage, the remote adapter, the worker pool, the periodic sync job
// and the terminal UI. Each command of the CLI maps to one method of [App].
package client
