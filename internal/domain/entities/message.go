package entities

import (
	"time"

	"scerr/internal/domain"
)

// LocalizedMessage overrides the message text of a code for one locale.
type LocalizedMessage struct {
	Code      domain.ErrorCode
	Locale    string
	Text      string
	UpdatedAt time.Time
}
