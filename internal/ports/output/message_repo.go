package output

import (
	"context"

	"scerr/internal/domain/entities"
)

// MessageRepository persists per-locale message overrides.
type MessageRepository interface {
	List(ctx context.Context) ([]entities.LocalizedMessage, error)
	Upsert(ctx context.Context, msg *entities.LocalizedMessage) error
}
