package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-lab-access/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	keyStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

var statusStyles = map[models.RequestStatus]lipgloss.Style{
	models.StatusPending:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	models.StatusApproved: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.StatusRejected: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	models.StatusExpired:  lipgloss.NewStyle().Faint(true),
}

func renderStatus(status models.RequestStatus) string {
	style, ok := statusStyles[status]
	if !ok {
		return string(status)
	}
	return style.Render(string(status))
}
