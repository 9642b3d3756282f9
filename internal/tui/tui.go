// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the notes client: a composer for
// new notes and the list of notes written by the connected account.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	notes     service.NotesService
	session   wallet.Session
	buildInfo models.AppBuildInfo
	exportDir string
	logger    *logger.Logger
}

func New(notes service.NotesService, session wallet.Session, buildInfo models.AppBuildInfo, exportDir string, log *logger.Logger) *TUI {
	return &TUI{
		notes:     notes,
		session:   session,
		buildInfo: buildInfo,
		exportDir: exportDir,
		logger:    log.WithAccount(session.Account),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.notes, t.session, t.buildInfo, t.exportDir, t.logger)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
