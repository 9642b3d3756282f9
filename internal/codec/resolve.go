package codec

import (
	"context"

	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDecrypts bounds wallet prompts in flight during ResolveAll.
const maxConcurrentDecrypts = 4

// Resolve computes authorship and visibility of note for session.
func Resolve(ctx context.Context, session wallet.Session, note models.Note) models.NoteView {
	isAuthor := session.IsAuthor(note.Author)
	decoded, err := Decode(ctx, session, note.Content, isAuthor)

	return models.NoteView{
		Note:         note,
		Decoded:      decoded,
		IsAuthor:     isAuthor,
		MintEligible: IsMintEligible(note.Content),
		Err:          err,
	}
}

// ResolveAll resolves every note independently and returns views in input
// order. A failing note only sets its own view's Err.
func ResolveAll(ctx context.Context, session wallet.Session, notes []models.Note) []models.NoteView {
	views := make([]models.NoteView, len(notes))

	var g errgroup.Group
	g.SetLimit(maxConcurrentDecrypts)

	for i, note := range notes {
		// plaintext and foreign notes never reach the wallet
		if !IsEncrypted(note.Content) || !session.IsAuthor(note.Author) {
			views[i] = Resolve(ctx, session, note)
			continue
		}

		g.Go(func() error {
			views[i] = Resolve(ctx, session, note)
			return nil
		})
	}

	// failures live in each view's Err, the group never reports one
	_ = g.Wait()
	return views
}
