package discord

import (
	"scerr/internal/ports/input"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	describe input.DescribeUseCase
}

// NewHandler creates a Handler.
func NewHandler(describe input.DescribeUseCase) *Handler {
	return &Handler{describe: describe}
}
