// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the chain: note
// drafts in the client and author addresses in the gateway.
//
// Rules live as go-playground/validator tags on the models (see
// models.NoteDraft). Failures come back as the sentinels in errors.go so
// callers can branch with errors.Is.
package validators

import "context"

// Validator checks obj. With fields set, only those struct fields are
// checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
