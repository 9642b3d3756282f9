package service

import (
	"errors"

	"github.com/MKhiriev/ether-notes/internal/validators"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyNote          = validators.ErrEmptyNote
	ErrNoteTooLong        = validators.ErrNoteTooLong
	ErrMarkerInPublicNote = validators.ErrMarkerInPublicNote
	ErrInvalidAddress     = validators.ErrInvalidAddress

	// ErrNotMintEligible is returned for encrypted notes; only plaintext
	// notes can be minted.
	ErrNotMintEligible = errors.New("note is not eligible for minting")

	// ErrNoteNotFound is returned when the gateway has nothing for an author
	// and the chain cannot be reached either.
	ErrNoteNotFound = errors.New("notes were not found")
)
