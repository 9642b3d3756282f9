// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/ether-notes/internal/app"
)

const msgNetworkUnavailable = "The network or the wallet is unreachable."

// describeError turns err into a toast. Transport failures that surface as
// raw dial errors get one wording regardless of which layer returned them.
func describeError(err error) app.Toast {
	if err == nil {
		return app.Toast{}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return app.Toast{Title: app.MsgTransactionError, Description: msgNetworkUnavailable}
	}

	return app.Describe(err)
}
