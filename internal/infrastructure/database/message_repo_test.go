package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scerr/internal/domain"
	"scerr/internal/domain/entities"
)

type fakeRow struct {
	updatedAt time.Time
	err       error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*pgtype.Timestamptz) = pgtype.Timestamptz{Time: r.updatedAt, Valid: true}
	return nil
}

type fakeDB struct {
	row      fakeRow
	queryErr error

	sql  string
	args []any
}

func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, f.queryErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return f.row
}

func TestMessageRepository_Upsert(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{updatedAt: now}}
	repo := NewMessageRepository(db)

	msg := &entities.LocalizedMessage{Code: 1004, Locale: "fr", Text: "Annulée."}
	require.NoError(t, repo.Upsert(context.Background(), msg))

	assert.Equal(t, upsertMessage, db.sql)
	assert.Equal(t, []any{int64(1004), "fr", "Annulée."}, db.args)
	assert.Equal(t, now, msg.UpdatedAt)
}

func TestMessageRepository_UpsertError(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: errors.New("connection reset")}}
	repo := NewMessageRepository(db)

	err := repo.Upsert(context.Background(), &entities.LocalizedMessage{Code: 1, Locale: "en", Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en/SCERR1")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMessageRepository_ListQueryError(t *testing.T) {
	db := &fakeDB{queryErr: errors.New("relation does not exist")}
	repo := NewMessageRepository(db)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, listMessages, db.sql)
}

func TestMessageToDomain(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m, err := messageToDomain(messageRow{
		Code:      4294967295,
		Locale:    "sv",
		Message:   "Fel.",
		UpdatedAt: pgtype.Timestamptz{Time: ts, Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ErrorCode(0xFFFFFFFF), m.Code)
	assert.Equal(t, ts, m.UpdatedAt)

	m, err = messageToDomain(messageRow{Code: 1})
	require.NoError(t, err)
	assert.True(t, m.UpdatedAt.IsZero())

	_, err = messageToDomain(messageRow{Code: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	_, err = messageToDomain(messageRow{Code: 1 << 32})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}
