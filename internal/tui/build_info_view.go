// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/ether-notes/models"

func renderBuildInfoWindow(info models.AppBuildInfo, account string) string {
	return renderPage("About EtherNotes", []field{
		{"Version", info.BuildVersion()},
		{"Built", info.BuildDate()},
		{"Commit", info.BuildCommit()},
		{"Account", account},
	}, "v/esc: back")
}
