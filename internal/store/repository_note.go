// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/common"
)

const (
	authorsTable = "authors"
	notesTable   = "notes"

	upsertAuthorFetched = "ON CONFLICT (address) DO UPDATE SET fetched_at = EXCLUDED.fetched_at"
	upsertAuthorNoop    = "ON CONFLICT (address) DO NOTHING"
)

// noteRepository is the SQL implementation of [NoteRepository] shared by
// SQLite and PostgreSQL.
type noteRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *noteRepository) TrackAuthor(ctx context.Context, author common.Address) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(authorsTable).
		Columns("address", "tracked_at").
		Values(author.Hex(), r.now()).
		Suffix(upsertAuthorNoop).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.TrackAuthor").
			Str("author", author.Hex()).
			Msg("failed to track author")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ReplaceNotes is retried once on a transient failure.
func (r *noteRepository) ReplaceNotes(ctx context.Context, author common.Address, notes []models.Note) error {
	return r.withRetry(ctx, func() error {
		return r.replaceNotes(ctx, author, notes)
	})
}

func (r *noteRepository) replaceNotes(ctx context.Context, author common.Address, notes []models.Note) error {
	log := logger.FromContext(ctx)
	now := r.now()

	upsertQuery, upsertArgs, err := r.builder.
		Insert(authorsTable).
		Columns("address", "tracked_at", "fetched_at").
		Values(author.Hex(), now, now).
		Suffix(upsertAuthorFetched).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteQuery, deleteArgs, err := r.builder.
		Delete(notesTable).
		Where("author = ?", author.Hex()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ReplaceNotes").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(ctx, tx, "noteRepository.ReplaceNotes")

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ReplaceNotes").
			Str("author", author.Hex()).
			Msg("failed to upsert author")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ReplaceNotes").
			Str("author", author.Hex()).
			Msg("failed to delete cached notes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(notes) > 0 {
		insert := r.builder.
			Insert(notesTable).
			Columns("author", "position", "content", "block_time")
		for i, n := range notes {
			insert = insert.Values(author.Hex(), i, n.Content, int64(n.Timestamp))
		}

		insertQuery, insertArgs, buildErr := insert.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "noteRepository.ReplaceNotes").
				Str("author", author.Hex()).
				Int("notes", len(notes)).
				Msg("failed to insert notes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "noteRepository.ReplaceNotes").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "noteRepository.ReplaceNotes").
		Str("author", author.Hex()).
		Int("notes", len(notes)).
		Msg("notes cached")
	return nil
}

func (r *noteRepository) ListNotes(ctx context.Context, author common.Address) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("content", "block_time").
		From(notesTable).
		Where("author = ?", author.Hex()).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Str("author", author.Hex()).
			Msg("failed to execute query for cached notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		var (
			content   string
			blockTime int64
		)
		if err = rows.Scan(&content, &blockTime); err != nil {
			log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, models.Note{Author: author, Content: content, Timestamp: uint64(blockTime)})
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) ListAuthors(ctx context.Context) ([]common.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("address").
		From(authorsTable).
		OrderBy("tracked_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListAuthors").Msg("failed to execute query for authors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var authors []common.Address
	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		authors = append(authors, common.HexToAddress(address))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authors, nil
}

func (r *noteRepository) FetchedAt(ctx context.Context, author common.Address) (time.Time, error) {
	query, args, err := r.builder.
		Select("fetched_at").
		From(authorsTable).
		Where("address = ?", author.Hex()).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var fetchedAt sql.NullTime
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&fetchedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return time.Time{}, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "noteRepository.FetchedAt").
			Str("author", author.Hex()).
			Msg("failed to read cache time")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !fetchedAt.Valid {
		return time.Time{}, nil
	}
	return fetchedAt.Time.UTC(), nil
}
