// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Visibility is the tagged state of a decoded note. Every consumer switches
// over all three values.
type Visibility int

const (
	// Public notes are stored as plaintext and readable by anyone.
	Public Visibility = iota + 1

	// PrivateLocked notes are encrypted and were not (or could not be)
	// decrypted for the current viewer.
	PrivateLocked

	// PrivateUnlocked notes are encrypted and were decrypted by the author's
	// wallet for this render.
	PrivateUnlocked
)

var visibilityNames = map[Visibility]string{
	Public:          "public",
	PrivateLocked:   "private_locked",
	PrivateUnlocked: "private_unlocked",
}

// String implements fmt.Stringer.
func (v Visibility) String() string {
	if name, ok := visibilityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("visibility(%d)", int(v))
}

// MarshalText implements encoding.TextMarshaler so that visibility is
// rendered as a stable string in JSON and YAML.
func (v Visibility) MarshalText() ([]byte, error) {
	name, ok := visibilityNames[v]
	if !ok {
		return nil, fmt.Errorf("unknown visibility %d", int(v))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error {
	for value, name := range visibilityNames {
		if name == string(text) {
			*v = value
			return nil
		}
	}
	return fmt.Errorf("unknown visibility %q", string(text))
}

// IsPrivate reports whether the note was stored encrypted.
func (v Visibility) IsPrivate() bool {
	switch v {
	case Public:
		return false
	case PrivateLocked, PrivateUnlocked:
		return true
	default:
		return false
	}
}

// DecodedNote is the result of decoding a raw on-chain content string for a
// particular viewer. Body is nil exactly when Visibility is PrivateLocked.
type DecodedNote struct {
	Visibility Visibility `json:"visibility"`
	Body       *string    `json:"body"`
}

// PublicNote builds a decoded plaintext note.
func PublicNote(body string) DecodedNote {
	return DecodedNote{Visibility: Public, Body: &body}
}

// UnlockedNote builds a decoded private note readable by its author.
func UnlockedNote(body string) DecodedNote {
	return DecodedNote{Visibility: PrivateUnlocked, Body: &body}
}

// LockedNote builds a decoded private note with no readable body.
func LockedNote() DecodedNote {
	return DecodedNote{Visibility: PrivateLocked}
}

// Text returns the body or an empty string for locked notes.
func (d DecodedNote) Text() string {
	if d.Body == nil {
		return ""
	}
	return *d.Body
}
