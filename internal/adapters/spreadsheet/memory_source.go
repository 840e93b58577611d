package spreadsheet

import (
	"context"

	"gpr-profile-service/internal/domain"
)

// In-memory table source for tests and fixtures.
type MemorySource struct {
	Table domain.Table
	Err   error
}

func NewMemorySource(t domain.Table) *MemorySource {
	return &MemorySource{Table: t}
}

func (s *MemorySource) ReadTable(ctx context.Context) (domain.Table, error) {
	if s.Err != nil {
		return domain.Table{}, s.Err
	}
	return s.Table, nil
}
