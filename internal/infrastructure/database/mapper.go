package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"scerr/internal/domain"
	"scerr/internal/domain/entities"
)

type messageRow struct {
	Code      int64              `db:"code"`
	Locale    string             `db:"locale"`
	Message   string             `db:"message"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func messageToDomain(r messageRow) (entities.LocalizedMessage, error) {
	if r.Code < 0 || r.Code > int64(^uint32(0)) {
		return entities.LocalizedMessage{}, fmt.Errorf("%w: stored code %d", domain.ErrInvalidCode, r.Code)
	}
	return entities.LocalizedMessage{
		Code:      domain.ErrorCode(r.Code),
		Locale:    r.Locale,
		Text:      r.Message,
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}, nil
}
