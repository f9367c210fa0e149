package input

import (
	"scerr/internal/domain"
	"scerr/internal/domain/entities"
)

// FormatUseCase renders error codes into human-readable text.
type FormatUseCase interface {
	Format(code domain.ErrorCode, buf []uint16, capacity int) int
	Message(code domain.ErrorCode, capacity int) string
	ErrorMessage(err error, capacity int) string
}

// DescribeUseCase combines catalog metadata with a localized message.
type DescribeUseCase interface {
	Describe(locale string, code domain.ErrorCode) Description
}

// Description is what front-ends show for an error code.
type Description struct {
	Code    domain.ErrorCode
	Message string
	Entry   *entities.Entry
}
