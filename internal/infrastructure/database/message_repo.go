package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"scerr/internal/domain/entities"
	"scerr/internal/ports/output"
)

const (
	listMessages = `SELECT code, locale, message, updated_at FROM error_messages ORDER BY code, locale`

	upsertMessage = `INSERT INTO error_messages (code, locale, message)
VALUES ($1, $2, $3)
ON CONFLICT (code, locale) DO UPDATE SET message = EXCLUDED.message, updated_at = now()
RETURNING updated_at`
)

var _ output.MessageRepository = (*MessageRepository)(nil)

// MessageRepository implements output.MessageRepository on PostgreSQL.
type MessageRepository struct {
	db DBTX
}

// NewMessageRepository creates a MessageRepository.
func NewMessageRepository(db DBTX) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) List(ctx context.Context) ([]entities.LocalizedMessage, error) {
	rows, err := r.db.Query(ctx, listMessages)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[messageRow])
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]entities.LocalizedMessage, 0, len(records))
	for _, rec := range records {
		m, err := messageToDomain(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MessageRepository) Upsert(ctx context.Context, msg *entities.LocalizedMessage) error {
	var row messageRow
	err := r.db.QueryRow(ctx, upsertMessage, int64(msg.Code), msg.Locale, msg.Text).Scan(&row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert message %s/%s: %w", msg.Locale, msg.Code.MessageID(), err)
	}
	msg.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}
