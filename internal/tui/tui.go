// Package tui implements the admin review console of the lab-access
// client on top of Bubble Tea.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/service"
	"github.com/MKhiriev/go-lab-access/models"
)

type TUI struct {
	admin     service.AdminService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(admin service.AdminService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{admin: admin, buildInfo: buildInfo, logger: logger}
}

// Run opens the console and blocks until the admin quits. A session already
// held by the admin service skips the login page.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.admin),
		pageRequests: NewRequestsModel(ctx, t.admin),
	}

	start := pageLogin
	if _, ok := t.admin.Session(); ok {
		start = pageRequests
	}

	root := NewRootModel(pages, start, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		t.logger.Err(err).Msg("admin console stopped")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
