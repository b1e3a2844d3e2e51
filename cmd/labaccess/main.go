package main

import (
	"os"

	"github.com/MKhiriev/go-lab-access/internal/cli"
	"github.com/MKhiriev/go-lab-access/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
