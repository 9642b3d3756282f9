// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the EtherNotes terminal client: the TUI in the
// foreground, the receipt watcher in the background, and the local stores
// closed once both are done.
package client
