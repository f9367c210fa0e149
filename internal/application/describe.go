package application

import (
	"scerr/internal/domain"
	"scerr/internal/domain/entities"
	"scerr/internal/ports/input"
	"scerr/internal/ports/output"
)

var _ input.DescribeUseCase = (*DescribeService)(nil)

// DescribeService answers "what is this code" for front-ends.
type DescribeService struct {
	catalog  *entities.Catalog
	tables   output.MessageTables
	capacity int
}

func NewDescribeService(catalog *entities.Catalog, tables output.MessageTables, capacity int) *DescribeService {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &DescribeService{
		catalog:  catalog,
		tables:   tables,
		capacity: capacity,
	}
}

// Describe formats code in locale and attaches its catalog entry if any.
func (s *DescribeService) Describe(locale string, code domain.ErrorCode) input.Description {
	var table output.MessageTable
	if s.tables != nil {
		table = s.tables.Table(locale)
	}
	d := input.Description{
		Code:    code,
		Message: NewFormatter(table).Message(code, s.capacity),
	}
	if s.catalog != nil {
		if e, ok := s.catalog.Lookup(code); ok {
			d.Entry = &e
		}
	}
	return d
}
