package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lab-access/models"
)

// statusTabs is the order the status filter cycles through.
var statusTabs = []models.RequestStatus{
	models.StatusPending,
	models.StatusApproved,
	models.StatusRejected,
	models.StatusAll,
}

const (
	colID       = 5
	colName     = 20
	colRoom     = 18
	colSoftware = 18
	colStatus   = 9
)

func renderTabs(active int) string {
	parts := make([]string, len(statusTabs))
	for i, status := range statusTabs {
		if i == active {
			parts[i] = titleStyle.Render("[" + string(status) + "]")
			continue
		}
		parts[i] = " " + string(status) + " "
	}
	return strings.Join(parts, " ")
}

func renderRequestRows(items []models.AccessRequest, idx int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %-*s │ %-*s │ %-*s │ %-*s │ %s\n",
		colID, "ID", colName, "Name", colRoom, "Room / PC", colSoftware, "Software", "Status"))
	b.WriteString(strings.Repeat("─", 2+colID+colName+colRoom+colSoftware+colStatus+12))
	b.WriteString("\n")

	for i, req := range items {
		cursor := "  "
		if i == idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-*d │ %-*s │ %-*s │ %-*s │ %s\n",
			cursor,
			colID, req.ID,
			colName, fitText(req.Name, colName),
			colRoom, fitText(req.Room+" / "+req.Computer, colRoom),
			colSoftware, fitText(req.Software, colSoftware),
			renderStatus(req.Status),
		))
	}

	return strings.TrimRight(b.String(), "\n")
}
