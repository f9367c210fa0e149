package application

import (
	"context"
	"fmt"

	"scerr/internal/domain/entities"
	"scerr/internal/ports/output"
)

// OverrideSink accepts message overrides, e.g. the i18n tables.
type OverrideSink interface {
	AddOverrides(msgs []entities.LocalizedMessage) error
}

// MessageService moves message texts between the catalog, the override
// store and the in-memory tables.
type MessageService struct {
	repo output.MessageRepository
}

func NewMessageService(repo output.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Sync stores every catalog description under locale and returns how many
// rows were written.
func (s *MessageService) Sync(ctx context.Context, catalog *entities.Catalog, locale string) (int, error) {
	n := 0
	for _, e := range catalog.Entries() {
		msg := &entities.LocalizedMessage{
			Code:   e.CodeWithFacility(),
			Locale: locale,
			Text:   e.Description,
		}
		if err := s.repo.Upsert(ctx, msg); err != nil {
			return n, fmt.Errorf("sync %s: %w", e.Name, err)
		}
		n++
	}
	return n, nil
}

// LoadOverrides copies every stored message into sink.
func (s *MessageService) LoadOverrides(ctx context.Context, sink OverrideSink) (int, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := sink.AddOverrides(msgs); err != nil {
		return 0, err
	}
	return len(msgs), nil
}
