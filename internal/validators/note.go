// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/ether-notes/internal/codec"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/go-playground/validator/v10"
)

// Custom tags registered on the underlying validator.
const (
	tagNonBlank = "nonblank"
	tagNoMarker = "nomarker"
)

// FieldBody restricts validation of a NoteDraft to its body.
const FieldBody = "Body"

// NoteValidator validates note drafts and account addresses.
type NoteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator constructs a [NoteValidator] with the nonblank and
// nomarker rules registered.
func NewNoteValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// both registrations only fail on an empty tag or nil func
	_ = v.RegisterValidation(tagNonBlank, validateNonBlank)
	_ = v.RegisterValidation(tagNoMarker, validateNoMarker)

	return &NoteValidator{validate: v}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(ctx, *value, fields...)
	case string:
		return v.validateAddress(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *NoteValidator) validateDraft(ctx context.Context, draft models.NoteDraft, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, draft, fields...)
	} else {
		err = v.validate.StructCtx(ctx, draft)
	}
	return translate(err)
}

func (v *NoteValidator) validateAddress(address string) error {
	if err := v.validate.Var(address, "required,eth_addr"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return nil
}

// translate maps the first failed rule onto a sentinel error.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case tagNonBlank, "required":
		return ErrEmptyNote
	case "max":
		return fmt.Errorf("%w: limit is %s characters", ErrNoteTooLong, fe.Param())
	case tagNoMarker:
		return ErrMarkerInPublicNote
	default:
		return fmt.Errorf("%s failed on %s: %w", fe.Field(), fe.Tag(), err)
	}
}

func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateNoMarker only applies to public drafts: a private draft is
// encrypted before it reaches the chain.
func validateNoMarker(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}
	if private := parent.FieldByName("Private"); private.IsValid() && private.Kind() == reflect.Bool && private.Bool() {
		return true
	}
	return !codec.IsEncrypted(fl.Field().String())
}
