// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	errNilServices      = errors.New("gateway handlers need a service set")
	errNoGatewayAddress = errors.New("gateway http address is not configured")
)
