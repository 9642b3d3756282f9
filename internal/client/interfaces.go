// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is what cmd/client runs: it blocks until the user leaves or ctx
// is cancelled.
type Client interface {
	Run(ctx context.Context) error
}

// UI is the terminal front end. Returning tui.ErrUserQuit is a normal exit.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
