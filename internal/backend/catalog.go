package backend

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-lab-access/models"
)

// defaultLogo is a 1x1 PNG sent as bare base64, the way the production
// backend sends uploaded logos.
const defaultLogo = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// Room is a lab room and the workstations it holds.
type Room struct {
	Name      string
	Computers []string
}

// Catalog is the static reference data served by the development backend.
type Catalog struct {
	Rooms      []Room
	Software   []string
	Restricted []string
	Branding   models.Branding
}

// DefaultCatalog returns the catalog used when none is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		Rooms: []Room{
			{Name: "Lab A", Computers: []string{"PC-A01", "PC-A02", "PC-A03", "PC-A04"}},
			{Name: "Lab B", Computers: []string{"PC-B01", "PC-B02", "PC-B03"}},
			{Name: "Lab Riset", Computers: []string{"WS-R01", "WS-R02"}},
		},
		Software: []string{
			"ArcGIS", "AutoCAD", "MATLAB", "Python", "RStudio", "SPSS", "SolidWorks", "Visual Studio Code",
		},
		Restricted: []string{"ArcGIS", "SolidWorks"},
		Branding: models.Branding{
			Logo:    defaultLogo,
			AppName: "Lab Access",
		},
	}
}

func (c Catalog) roomNames() []string {
	names := make([]string, len(c.Rooms))
	for i, r := range c.Rooms {
		names[i] = r.Name
	}
	return names
}

func (c Catalog) room(name string) (Room, bool) {
	for _, r := range c.Rooms {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Room{}, false
}

func (r Room) hasComputer(name string) bool {
	return slices.ContainsFunc(r.Computers, func(c string) bool {
		return strings.EqualFold(c, name)
	})
}

// restricted returns the entries of titles that need explicit approval, in
// catalog spelling.
func (c Catalog) restricted(titles []string) []string {
	out := make([]string, 0)
	for _, r := range c.Restricted {
		if slices.ContainsFunc(titles, func(t string) bool { return strings.EqualFold(t, r) }) {
			out = append(out, r)
		}
	}
	return out
}

// splitSoftware splits a comma separated software list, dropping blanks.
func splitSoftware(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
