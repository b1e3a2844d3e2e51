// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lab-access/internal/mock"
	"github.com/MKhiriev/go-lab-access/internal/service"
	"github.com/MKhiriev/go-lab-access/models"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockAdminService) {
	t.Helper()
	admin := mock.NewMockAdminService(gomock.NewController(t))
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, admin),
		pageRequests: NewRequestsModel(ctx, admin),
	}
	return NewRootModel(pages, pageLogin, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")), admin
}

func TestLoginModel_RequiresBothFields(t *testing.T) {
	admin := mock.NewMockAdminService(gomock.NewController(t))
	m := NewLoginModel(context.Background(), admin)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "E-mail and password are required")
}

func TestLoginModel_SubmitsCredentials(t *testing.T) {
	admin := mock.NewMockAdminService(gomock.NewController(t))
	m := NewLoginModel(context.Background(), admin)

	m.Update(runes("admin@lab.test"))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes("secret"))

	session := models.AdminSession{Token: "tok", Email: "admin@lab.test"}
	admin.EXPECT().Login(gomock.Any(), "admin@lab.test", "secret").Return(session, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, session, result.Session)
}

func TestLoginModel_ShowsError(t *testing.T) {
	admin := mock.NewMockAdminService(gomock.NewController(t))
	m := NewLoginModel(context.Background(), admin)
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrWrongPassword})

	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), service.ErrWrongPassword.Error())
}

func TestRootModel_SuccessfulLoginOpensRequests(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, cmd := root.Update(LoginResult{Session: models.AdminSession{Token: "tok"}})
	r := updated.(RootModel)

	assert.Equal(t, pageRequests, r.currentName)
	assert.NotNil(t, cmd)
}

func TestRootModel_NavigateUnknownPage(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, cmd := root.Update(NavigateTo{Page: "nowhere"})

	assert.Equal(t, pageLogin, updated.(RootModel).currentName)
	assert.Nil(t, cmd)
}

func TestRootModel_VersionOverlayOnlyOnList(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, _ := root.Update(runes("v"))
	r := updated.(RootModel)
	assert.False(t, r.showBuildInfo, "v is typed into the login form")

	r.current = r.pages[pageRequests]
	r.currentName = pageRequests
	updated, _ = r.Update(runes("v"))
	r = updated.(RootModel)
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.2.3")

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, updated.(RootModel).showBuildInfo)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, updated.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
}
