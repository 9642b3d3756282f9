// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("gateway has no http handler")
	errNoListenAddr  = errors.New("gateway listen address is empty")
)
