package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var author = common.HexToAddress("0x00000000000000000000000000000000000000a1")

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}
	return newDB(conn, dialect, classifier, logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestTrackAuthor_Placeholders(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		query   string
	}{
		{
			name:    "sqlite uses question marks",
			dialect: DialectSQLite,
			query:   `INSERT INTO authors (address,tracked_at) VALUES (?,?) ON CONFLICT (address) DO NOTHING`,
		},
		{
			name:    "postgres uses numbered placeholders",
			dialect: DialectPostgres,
			query:   `INSERT INTO authors (address,tracked_at) VALUES ($1,$2) ON CONFLICT (address) DO NOTHING`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, tt.dialect)
			repo := NewNoteRepository(db, logger.Nop())

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(author.Hex(), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.TrackAuthor(testContext(), author))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReplaceNotes(t *testing.T) {
	notes := []models.Note{
		{Author: author, Content: "hello", Timestamp: 100},
		{Author: author, Content: "encrypted::0xabc", Timestamp: 200},
	}

	type mockSetup func(mock sqlmock.Sqlmock)

	expectUpsert := func(mock sqlmock.Sqlmock) *sqlmock.ExpectedExec {
		return mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO authors (address,tracked_at,fetched_at) VALUES (?,?,?) ON CONFLICT (address) DO UPDATE SET fetched_at = EXCLUDED.fetched_at`)).
			WithArgs(author.Hex(), sqlmock.AnyArg(), sqlmock.AnyArg())
	}
	expectDelete := func(mock sqlmock.Sqlmock) *sqlmock.ExpectedExec {
		return mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes WHERE author = ?`)).
			WithArgs(author.Hex())
	}
	insertSQL := regexp.QuoteMeta(`INSERT INTO notes (author,position,content,block_time) VALUES (?,?,?,?),(?,?,?,?)`)

	tests := []struct {
		name    string
		notes   []models.Note
		setup   mockSetup
		wantErr error
	}{
		{
			name:  "success: notes replaced in one transaction",
			notes: notes,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectUpsert(mock).WillReturnResult(sqlmock.NewResult(0, 1))
				expectDelete(mock).WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec(insertSQL).
					WithArgs(
						author.Hex(), 0, "hello", int64(100),
						author.Hex(), 1, "encrypted::0xabc", int64(200),
					).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name:  "success: empty list only clears the cache",
			notes: nil,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectUpsert(mock).WillReturnResult(sqlmock.NewResult(0, 1))
				expectDelete(mock).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name:  "error: insert fails and transaction is rolled back",
			notes: notes,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectUpsert(mock).WillReturnResult(sqlmock.NewResult(0, 1))
				expectDelete(mock).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(insertSQL).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:  "error: begin fails",
			notes: notes,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name:  "error: commit fails",
			notes: nil,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectUpsert(mock).WillReturnResult(sqlmock.NewResult(0, 1))
				expectDelete(mock).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit().WillReturnError(errors.New("io"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, DialectSQLite)
			repo := NewNoteRepository(db, logger.Nop())
			tt.setup(mock)

			err := repo.ReplaceNotes(testContext(), author, tt.notes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReplaceNotes_RetriesTransientFailure(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO authors`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes WHERE author = $1`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceNotes(testContext(), author, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceNotes_NoRetryOnPermanentFailure(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	err := repo.ReplaceNotes(testContext(), author, nil)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes(t *testing.T) {
	db, mock := newMockDB(t, DialectSQLite)
	repo := NewNoteRepository(db, logger.Nop())

	query := regexp.QuoteMeta(`SELECT content, block_time FROM notes WHERE author = ? ORDER BY position`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(author.Hex()).
			WillReturnRows(sqlmock.NewRows([]string{"content", "block_time"}).
				AddRow("first", int64(10)).
				AddRow("second", int64(20)))

		notes, err := repo.ListNotes(testContext(), author)
		require.NoError(t, err)
		assert.Equal(t, []models.Note{
			{Author: author, Content: "first", Timestamp: 10},
			{Author: author, Content: "second", Timestamp: 20},
		}, notes)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(sql.ErrConnDone)

		_, err := repo.ListNotes(testContext(), author)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"content", "block_time"}).AddRow("x", "not a number"))

		_, err := repo.ListNotes(testContext(), author)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("row iteration error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"content", "block_time"}).
				AddRow("x", int64(1)).
				RowError(0, errors.New("broken")))

		_, err := repo.ListNotes(testContext(), author)
		assert.ErrorIs(t, err, ErrScanningRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAuthors(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewNoteRepository(db, logger.Nop())

	other := common.HexToAddress("0x00000000000000000000000000000000000000b2")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT address FROM authors ORDER BY tracked_at`)).
		WillReturnRows(sqlmock.NewRows([]string{"address"}).
			AddRow(author.Hex()).
			AddRow(other.Hex()))

	authors, err := repo.ListAuthors(testContext())
	require.NoError(t, err)
	assert.Equal(t, []common.Address{author, other}, authors)
	assert.NoError(t, mock.ExpectationsWereMet())
}


func TestFetchedAt(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewNoteRepository(db, logger.Nop())

	query := regexp.QuoteMeta(`SELECT fetched_at FROM authors WHERE address = $1`)
	cachedAt := time.Date(2026, 9, 30, 8, 15, 0, 0, time.UTC)

	t.Run("cached", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(author.Hex()).
			WillReturnRows(sqlmock.NewRows([]string{"fetched_at"}).AddRow(cachedAt))

		got, err := repo.FetchedAt(testContext(), author)
		require.NoError(t, err)
		assert.Equal(t, cachedAt, got)
	})

	t.Run("tracked but never fetched", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"fetched_at"}).AddRow(nil))

		got, err := repo.FetchedAt(testContext(), author)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("unknown author", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"fetched_at"}))

		got, err := repo.FetchedAt(testContext(), author)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(sql.ErrConnDone)

		_, err := repo.FetchedAt(testContext(), author)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
