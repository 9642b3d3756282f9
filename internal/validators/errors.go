package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrEmptyNote is returned for a draft that is blank after trimming.
	ErrEmptyNote = errors.New("note is empty")

	// ErrNoteTooLong is returned when the plaintext exceeds the composer limit.
	ErrNoteTooLong = errors.New("note is too long")

	// ErrMarkerInPublicNote is returned for a public draft that starts with
	// the encrypted marker and would be misread as ciphertext.
	ErrMarkerInPublicNote = errors.New("public note cannot start with the encrypted marker")

	// ErrInvalidAddress is returned for a malformed account address.
	ErrInvalidAddress = errors.New("invalid account address")
)
