package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
)

// ClientStorages groups the client-side repositories backed by SQLite.
type ClientStorages struct {
	// Notes caches raw notes so that a failed reload can still render.
	Notes NoteRepository

	// Txs journals submitted transactions across sessions.
	Txs TxRepository

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Notes: NewNoteRepository(db, logger),
		Txs:   NewTxRepository(db, logger),
		db:    db,
	}, nil
}

// Close releases the database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

// GatewayStorages groups the gateway repositories backed by PostgreSQL.
type GatewayStorages struct {
	Notes NoteRepository

	db *DB
}

// NewGatewayStorages opens the PostgreSQL database named by cfg.DSN and runs
// pending migrations.
func NewGatewayStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*GatewayStorages, error) {
	logger.Info().Msg("creating gateway storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &GatewayStorages{
		Notes: NewNoteRepository(db, logger),
		db:    db,
	}, nil
}

// Ping checks the database connection.
func (s *GatewayStorages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Stats reports the connection pool state.
func (s *GatewayStorages) Stats() sql.DBStats {
	return s.db.Stats()
}

// Close releases the database.
func (s *GatewayStorages) Close() error {
	return s.db.Close()
}
