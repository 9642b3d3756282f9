// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/codec"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/store"
	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/common"
)

type gatewayService struct {
	chain  chain.NotesClient
	names  chain.NameResolver
	notes  store.NoteRepository
	logger *logger.Logger
}

// NewGatewayService wires the read-only gateway use cases.
func NewGatewayService(notesClient chain.NotesClient, names chain.NameResolver, notes store.NoteRepository, logger *logger.Logger) GatewayService {
	return &gatewayService{
		chain:  notesClient,
		names:  names,
		notes:  notes,
		logger: logger,
	}
}

// NotesFor serves the index and only goes to the chain for authors it has
// nothing cached for.
func (s *gatewayService) NotesFor(ctx context.Context, author common.Address) (models.NotesResponse, error) {
	log := logger.FromContext(ctx)

	notes, err := s.notes.ListNotes(ctx, author)
	if err != nil {
		log.Warn().Err(err).Str("func", "gatewayService.NotesFor").Msg("index unavailable, reading chain")
	}

	if len(notes) == 0 {
		// refresh hands back the chain result even when indexing it failed
		notes, err = s.refresh(ctx, author)
		if err != nil && notes == nil {
			return models.NotesResponse{}, fmt.Errorf("%w: %w", ErrNoteNotFound, err)
		}
	}

	cards := make([]models.NoteCard, 0, len(notes))
	for i := len(notes) - 1; i >= 0; i-- {
		cards = append(cards, toCard(ctx, notes[i]))
	}

	return models.NotesResponse{
		Author:      author.Hex(),
		DisplayName: chain.DisplayName(ctx, s.names, author),
		Notes:       cards,
		Length:      len(cards),
	}, nil
}

func (s *gatewayService) Track(ctx context.Context, author common.Address) error {
	if err := s.notes.TrackAuthor(ctx, author); err != nil {
		return err
	}
	_, err := s.refresh(ctx, author)
	return err
}

// RefreshAll re-indexes every tracked author. One failing author does not
// stop the others.
func (s *gatewayService) RefreshAll(ctx context.Context) (models.RefreshStats, error) {
	var stats models.RefreshStats

	authors, err := s.notes.ListAuthors(ctx)
	if err != nil {
		return stats, err
	}

	var errs []error
	for _, author := range authors {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		stats.Authors++
		notes, err := s.refresh(ctx, author)
		if err != nil {
			stats.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", author.Hex(), err))
			continue
		}
		stats.Notes += len(notes)
	}

	return stats, errors.Join(errs...)
}

func (s *gatewayService) refresh(ctx context.Context, author common.Address) ([]models.Note, error) {
	notes, err := s.chain.GetNotesByUser(ctx, author)
	if err != nil {
		return nil, err
	}

	if err = s.notes.ReplaceNotes(ctx, author, notes); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "gatewayService.refresh").
			Str("author", author.Hex()).
			Msg("failed to index notes")
		return notes, err
	}
	return notes, nil
}

// toCard decodes note as an anonymous viewer: the gateway holds no keys, so
// encrypted notes stay locked and the wallet is never consulted.
func toCard(ctx context.Context, note models.Note) models.NoteCard {
	decoded, _ := codec.Decode(ctx, wallet.Session{}, note.Content, false)

	return models.NoteCard{
		Author:       note.Author.Hex(),
		Content:      note.Content,
		Timestamp:    note.Timestamp,
		Visibility:   decoded.Visibility,
		Body:         decoded.Body,
		MintEligible: codec.IsMintEligible(note.Content),
	}
}
