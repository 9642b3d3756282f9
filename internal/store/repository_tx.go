// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/models"
)

const transactionsTable = "transactions"

var txColumns = []string{
	"id", "hash", "kind", "account", "status", "token_id", "error", "created_at", "updated_at",
}

type txRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTxRepository constructs the transaction journal backed by db.
func NewTxRepository(db *DB, logger *logger.Logger) TxRepository {
	return &txRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Save journals record. Empty timestamps are set to now.
func (r *txRepository) Save(ctx context.Context, record models.TxRecord) error {
	log := logger.FromContext(ctx)

	now := r.now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = record.CreatedAt
	}

	query, args, err := r.builder.
		Insert(transactionsTable).
		Columns(txColumns...).
		Values(
			record.ID,
			record.Hash,
			string(record.Kind),
			record.Account,
			string(record.Status),
			tokenIDValue(record.TokenID),
			record.Error,
			record.CreatedAt,
			record.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrTxAlreadyExists, record.Hash)
		}
		log.Err(err).
			Str("func", "txRepository.Save").
			Str("tx", record.Hash).
			Msg("failed to journal transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *txRepository) UpdateStatus(ctx context.Context, hash string, status models.TxStatus, tokenID *big.Int, reason string) error {
	log := logger.FromContext(ctx)

	update := r.builder.
		Update(transactionsTable).
		Set("status", string(status)).
		Set("error", reason).
		Set("updated_at", r.now())
	if tokenID != nil {
		update = update.Set("token_id", tokenID.String())
	}

	query, args, err := update.Where("hash = ?", hash).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "txRepository.UpdateStatus").
			Str("tx", hash).
			Msg("failed to update transaction status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrTxNotFound, hash)
	}

	return nil
}

func (r *txRepository) ListPending(ctx context.Context) ([]models.TxRecord, error) {
	return r.list(ctx, "txRepository.ListPending",
		r.builder.
			Select(txColumns...).
			From(transactionsTable).
			Where("status = ?", string(models.TxPending)).
			OrderBy("created_at"))
}

func (r *txRepository) ListRecent(ctx context.Context, account string, limit uint64) ([]models.TxRecord, error) {
	return r.list(ctx, "txRepository.ListRecent",
		r.builder.
			Select(txColumns...).
			From(transactionsTable).
			Where("account = ?", account).
			OrderBy("created_at DESC").
			Limit(limit))
}

func (r *txRepository) list(ctx context.Context, fn string, builder sq.SelectBuilder) ([]models.TxRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.TxRecord, 0, 8)
	for rows.Next() {
		var (
			rec     models.TxRecord
			kind    string
			status  string
			tokenID sql.NullString
		)
		if err = rows.Scan(
			&rec.ID,
			&rec.Hash,
			&kind,
			&rec.Account,
			&status,
			&tokenID,
			&rec.Error,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		rec.Kind = models.TxKind(kind)
		rec.Status = models.TxStatus(status)
		if tokenID.Valid {
			if id, ok := new(big.Int).SetString(tokenID.String, 10); ok {
				rec.TokenID = id
			}
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func tokenIDValue(id *big.Int) any {
	if id == nil {
		return nil
	}
	return id.String()
}
