package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-lab-access/models"
)

// Page names known to [RootModel].
const (
	pageLogin    = "login"
	pageRequests = "requests"
)

// NavigateTo asks [RootModel] to switch pages. A non-nil Payload is
// delivered to the new page instead of running its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced once the backend answered a login attempt.
type LoginResult struct {
	Session models.AdminSession
	Err     error
}

type sessionCheckedMsg struct {
	check models.AuthCheck
	err   error
}

type requestsLoadedMsg struct {
	status models.RequestStatus
	items  []models.AccessRequest
	err    error
}

type decisionDoneMsg struct {
	request models.AccessRequest
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
