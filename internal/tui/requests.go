package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-lab-access/internal/service"
	"github.com/MKhiriev/go-lab-access/models"
)

// defaultAccessPeriod prefills the approve form's expiration date.
const defaultAccessPeriod = 30 * 24 * time.Hour

type requestsMode int

const (
	modeList requestsMode = iota
	modeDetail
	modeApprove
	modeReject
	modeConfirm
)

// RequestsModel lists access requests by status and drives the approve and
// reject flows. The session is checked with the backend every time the
// page is opened.
type RequestsModel struct {
	ctx   context.Context
	admin service.AdminService
	now   func() time.Time

	tab     int
	items   []models.AccessRequest
	idx     int
	loading bool
	spinner spinner.Model

	mode       requestsMode
	detail     models.AccessRequest
	form       decisionForm
	submitting bool

	status  string
	errMsg  string
	overlay *errorOverlayModel
}

func NewRequestsModel(ctx context.Context, admin service.AdminService) *RequestsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RequestsModel{
		ctx:     ctx,
		admin:   admin,
		now:     time.Now,
		spinner: s,
	}
}

func (m *RequestsModel) Init() tea.Cmd {
	m.mode = modeList
	m.loading = true
	m.errMsg = ""
	m.overlay = nil
	return tea.Batch(m.spinner.Tick, m.cmdCheckSession())
}

func (m *RequestsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionCheckedMsg:
		if msg.err != nil {
			return m.handleSessionError(msg.err)
		}
		return m, m.cmdLoad()
	case requestsLoadedMsg:
		if msg.status != m.currentStatus() {
			// a stale answer for a tab the admin already left
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.handleSessionError(msg.err)
		}
		m.errMsg = ""
		m.items = msg.items
		m.clampIndex()
		return m, nil
	case decisionDoneMsg:
		m.submitting = false
		if msg.err != nil {
			if m.mode == modeConfirm {
				m.mode = modeApprove
			}
			m.overlay = &errorOverlayModel{message: humanizeServerUnavailableError(msg.err)}
			return m, nil
		}
		m.detail = msg.request
		m.mode = modeDetail
		m.status = fmt.Sprintf("Request #%d %s", msg.request.ID, strings.ToLower(string(msg.request.Status)))
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case copiedMsg:
		m.status = "Activation key copied to clipboard"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = msg.err.Error()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeApprove, modeReject:
		return m.updateForm(keyMsg)
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m *RequestsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % len(statusTabs)
		return m.reload()
	case key.Matches(msg, keys.backtab):
		m.tab = (m.tab - 1 + len(statusTabs)) % len(statusTabs)
		return m.reload()
	case key.Matches(msg, keys.reload):
		return m.reload()
	case key.Matches(msg, keys.enter):
		if req, ok := m.current(); ok {
			m.detail = req
			m.mode = modeDetail
		}
	case key.Matches(msg, keys.logout):
		m.admin.Logout()
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
	}

	return m, nil
}

func (m *RequestsModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.approve):
		if m.detail.Status == models.StatusPending {
			m.form = newApproveForm(m.now().Add(defaultAccessPeriod).Format(models.DateLayout))
			m.mode = modeApprove
		}
	case key.Matches(msg, keys.reject):
		if m.detail.Status == models.StatusPending {
			m.form = newRejectForm()
			m.mode = modeReject
		}
	case key.Matches(msg, keys.copy):
		if m.detail.ActivationKey != "" {
			return m, cmdCopyToClipboard(m.detail.ActivationKey)
		}
	}

	return m, nil
}

func (m *RequestsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeDetail
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		if m.mode == modeApprove {
			if m.form.value(approveFieldDate) == "" {
				m.overlay = &errorOverlayModel{message: "Expiration date is required"}
				return m, nil
			}
			m.mode = modeConfirm
			return m, nil
		}
		if m.form.value(0) == "" {
			m.overlay = &errorOverlayModel{message: "Reject reason is required"}
			return m, nil
		}
		m.submitting = true
		return m, m.cmdReject(m.detail.ID, m.form.value(0))
	}

	return m, m.form.update(msg)
}

func (m *RequestsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdApprove(
			m.detail.ID,
			m.form.value(approveFieldDate),
			m.form.value(approveFieldNotes),
			m.form.value(approveFieldKey),
		)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.mode = modeApprove
	}
	return m, nil
}

func (m *RequestsModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modeApprove || m.mode == modeReject {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *RequestsModel) handleSessionError(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrNotLoggedIn) {
		m.admin.Logout()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: LoginResult{Err: err}}
		}
	}
	m.errMsg = humanizeServerUnavailableError(err)
	return m, nil
}

func (m *RequestsModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.idx = 0
	m.items = nil
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *RequestsModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	switch m.mode {
	case modeDetail:
		return renderPage("REQUEST DETAIL", m.withStatus(renderDetail(m.detail)), detailHotKeys(m.detail))
	case modeApprove:
		return renderPage(fmt.Sprintf("APPROVE REQUEST #%d", m.detail.ID), m.form.View(),
			"tab: next field │ enter: continue │ esc: cancel")
	case modeReject:
		body := m.form.View()
		if m.submitting {
			body += "\n\n[Sending...]"
		}
		return renderPage(fmt.Sprintf("REJECT REQUEST #%d", m.detail.ID), body, "enter: reject │ esc: cancel")
	case modeConfirm:
		activationKey := m.form.value(approveFieldKey)
		if activationKey == "" {
			activationKey = "generated by the backend"
		}
		return confirmModel{message: fmt.Sprintf(
			"Approve request #%d for %s until %s?\nActivation key: %s",
			m.detail.ID, m.detail.Name, m.form.value(approveFieldDate), activationKey,
		)}.View()
	}

	var b strings.Builder
	b.WriteString(renderTabs(m.tab))
	b.WriteString("\n\n")
	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case len(m.items) == 0:
		b.WriteString("No requests")
	default:
		b.WriteString(renderRequestRows(m.items, m.idx))
	}

	return renderPage("ACCESS REQUESTS", m.withStatus(b.String()),
		"tab: filter │ enter: open │ r: reload │ l: logout │ v: version │ q: quit")
}

func (m *RequestsModel) withStatus(body string) string {
	if m.status != "" {
		body += "\n\n" + m.status
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}
	return body
}

func (m *RequestsModel) currentStatus() models.RequestStatus {
	return statusTabs[m.tab]
}

func (m *RequestsModel) current() (models.AccessRequest, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.AccessRequest{}, false
	}
	return m.items[m.idx], true
}

func (m *RequestsModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *RequestsModel) cmdCheckSession() tea.Cmd {
	ctx := m.ctx
	admin := m.admin
	return func() tea.Msg {
		check, err := admin.CheckSession(ctx)
		return sessionCheckedMsg{check: check, err: err}
	}
}

func (m *RequestsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	admin := m.admin
	status := m.currentStatus()
	return func() tea.Msg {
		items, err := admin.ListRequests(ctx, status)
		return requestsLoadedMsg{status: status, items: items, err: err}
	}
}

func (m *RequestsModel) cmdApprove(id int64, expirationDate, notes, activationKey string) tea.Cmd {
	ctx := m.ctx
	admin := m.admin
	return func() tea.Msg {
		req, err := admin.Approve(ctx, id, expirationDate, notes, activationKey)
		return decisionDoneMsg{request: req, err: err}
	}
}

func (m *RequestsModel) cmdReject(id int64, reason string) tea.Cmd {
	ctx := m.ctx
	admin := m.admin
	return func() tea.Msg {
		req, err := admin.Reject(ctx, id, reason)
		return decisionDoneMsg{request: req, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
