package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/ether-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteValidator_Draft(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   any
		wantErr error
	}{
		{name: "public note", draft: models.NoteDraft{Body: "hello chain"}},
		{name: "private note", draft: &models.NoteDraft{Body: "secret", Private: true}},
		{name: "exactly 200 characters", draft: models.NoteDraft{Body: strings.Repeat("a", 200)}},
		{name: "200 multibyte characters", draft: models.NoteDraft{Body: strings.Repeat("ж", 200)}},
		{name: "empty", draft: models.NoteDraft{}, wantErr: ErrEmptyNote},
		{name: "whitespace only", draft: models.NoteDraft{Body: " \n\t "}, wantErr: ErrEmptyNote},
		{name: "201 characters", draft: models.NoteDraft{Body: strings.Repeat("a", 201)}, wantErr: ErrNoteTooLong},
		{
			name:    "public note with marker",
			draft:   models.NoteDraft{Body: "encrypted::looks like ciphertext"},
			wantErr: ErrMarkerInPublicNote,
		},
		{
			name:  "private note with marker is encrypted anyway",
			draft: models.NoteDraft{Body: "encrypted::fine", Private: true},
		},
		{name: "unsupported type", draft: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoteValidator_PartialFields(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), models.NoteDraft{Body: ""}, FieldBody)
	require.ErrorIs(t, err, ErrEmptyNote)
}

func TestNoteValidator_Address(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, "0x5FbDB2315678afecb367f032d93F642f64180aa3"))
	assert.NoError(t, v.Validate(ctx, "0x5fbdb2315678afecb367f032d93f642f64180aa3"))
	assert.ErrorIs(t, v.Validate(ctx, ""), ErrInvalidAddress)
	assert.ErrorIs(t, v.Validate(ctx, "0x123"), ErrInvalidAddress)
	assert.ErrorIs(t, v.Validate(ctx, "vitalik.eth"), ErrInvalidAddress)
}
