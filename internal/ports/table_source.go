package ports

import (
	"context"
	"gpr-profile-service/internal/domain"
)

// Port: a boundary for reading one raw survey table from a
// spreadsheet-like input (XLSX, CSV, in-memory fixture).
type TableSource interface {
	// Read the full table, header row included. A source is
	// single-shot; it is consumed by one read.
	ReadTable(ctx context.Context) (domain.Table, error)
}
