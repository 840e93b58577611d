package spreadsheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"gpr-profile-service/internal/domain"
)

// Reads a CSV file as a survey table. Ragged rows are accepted; the
// header row fixes the nominal column count.
type CSVSource struct {
	r io.Reader
}

func NewCSVSource(r io.Reader) *CSVSource {
	return &CSVSource{r: r}
}

func (s *CSVSource) ReadTable(ctx context.Context) (domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return domain.Table{}, err
	}

	cr := csv.NewReader(s.r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return domain.Table{}, errors.New("read csv: file is empty")
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("read csv: read header: %w", err)
	}

	t := domain.Table{Header: header}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Table{}, fmt.Errorf("read csv: read record: %w", err)
		}

		cells := make([]domain.Cell, len(rec))
		for i, v := range rec {
			cells[i] = domain.ParseCell(v)
		}
		t.Rows = append(t.Rows, cells)
	}

	return t, nil
}
