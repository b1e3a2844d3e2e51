package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lab-access/models"
)

const detailTimeLayout = "2006-01-02 15:04"

func renderDetail(req models.AccessRequest) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-15s %s\n", label+":", valueOrDash(value)))
	}

	row("Request", fmt.Sprintf("#%d", req.ID))
	b.WriteString(fmt.Sprintf("%-15s %s\n", "Status:", renderStatus(req.Status)))
	row("Name", req.Name)
	row("E-mail", req.Email)
	row("Room", req.Room)
	row("Computer", req.Computer)
	row("Software", req.Software)
	row("Purpose", req.Purpose)
	row("Renewal of", req.RenewalOf)
	if !req.CreatedAt.IsZero() {
		row("Submitted", req.CreatedAt.Local().Format(detailTimeLayout))
	}

	switch req.Status {
	case models.StatusApproved, models.StatusExpired:
		row("Expires", req.ExpirationDate)
		row("Admin notes", req.AdminNotes)
		if req.ActivationKey != "" {
			b.WriteString(fmt.Sprintf("%-15s %s\n", "Activation key:", keyStyle.Render(req.ActivationKey)))
		}
	case models.StatusRejected:
		row("Reason", req.RejectReason)
	}
	if req.DecidedAt != nil {
		row("Decided", req.DecidedAt.Local().Format(detailTimeLayout))
	}
	if len(req.Files) > 0 {
		row("Files", strings.Join(req.Files, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func detailHotKeys(req models.AccessRequest) string {
	hints := []string{"esc: back"}
	if req.Status == models.StatusPending {
		hints = append(hints, "a: approve", "x: reject")
	}
	if req.ActivationKey != "" {
		hints = append(hints, "c: copy key")
	}
	return strings.Join(hints, " │ ")
}
