package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gpr-profile-service/internal/domain"
)

// Reads the first sheet of an XLSX workbook as a survey table.
// Cell typing follows ParseCell: anything not a finite number is a
// missing cell, never an error.
type XLSXSource struct {
	r io.Reader
}

func NewXLSXSource(r io.Reader) *XLSXSource {
	return &XLSXSource{r: r}
}

func (s *XLSXSource) ReadTable(ctx context.Context) (domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return domain.Table{}, err
	}

	f, err := excelize.OpenReader(s.r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read xlsx: open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return domain.Table{}, errors.New("read xlsx: workbook has no sheets")
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read xlsx: read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return domain.Table{}, errors.New("read xlsx: sheet is empty")
	}

	t := domain.Table{
		Header: raw[0],
		Rows:   make([][]domain.Cell, 0, len(raw)-1),
	}
	for _, rec := range raw[1:] {
		cells := make([]domain.Cell, len(rec))
		for i, v := range rec {
			cells[i] = domain.ParseCell(v)
		}
		t.Rows = append(t.Rows, cells)
	}

	return t, nil
}
