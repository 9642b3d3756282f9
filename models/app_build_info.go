// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfoNotAvailable stands in for any build value left empty.
const BuildInfoNotAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags. Empty
// values are reported as [BuildInfoNotAvailable].
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the three values in the format printed at startup.
func (a AppBuildInfo) String() string {
	var b strings.Builder
	b.WriteString("Build version: ")
	b.WriteString(a.buildVersion)
	b.WriteString("\nBuild date: ")
	b.WriteString(a.buildDate)
	b.WriteString("\nBuild commit: ")
	b.WriteString(a.buildCommit)
	return b.String()
}

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return BuildInfoNotAvailable
	}
	return v
}
