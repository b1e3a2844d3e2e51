package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata that was not injected.
const NotAvailable = "N/A"

// AppBuildInfo is the build metadata of a binary, injected with -ldflags -X
// into package main and passed down to the CLI and the admin console.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

// BuildVersion returns the version, or "" when none was injected.
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

func (a AppBuildInfo) BuildDate() string {
	return a.date
}

func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// WithVersion returns a copy carrying version when no version was injected
// at build time. Configured versions never override an injected one.
func (a AppBuildInfo) WithVersion(version string) AppBuildInfo {
	if a.version == "" {
		a.version = strings.TrimSpace(version)
	}
	return a
}

// Lines renders the metadata as "Build ...: value" lines, using
// [NotAvailable] for missing values.
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", orNotAvailable(a.version)),
		fmt.Sprintf("Build date: %s", orNotAvailable(a.date)),
		fmt.Sprintf("Build commit: %s", orNotAvailable(a.commit)),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
