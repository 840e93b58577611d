package services

import (
	"testing"

	"gpr-profile-service/internal/domain"
)

func cells(vals ...string) []domain.Cell {
	out := make([]domain.Cell, 0, len(vals))
	for _, v := range vals {
		out = append(out, domain.ParseCell(v))
	}
	return out
}

func threeLayerMapping() LayerMapping {
	return LayerMapping{
		Columns: []int{0, 1, 2},
		Names:   []string{"AC", "Base", "SubBase"},
	}
}

func TestComputeBoundariesFullRows(t *testing.T) {
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows: [][]domain.Cell{
			cells("10", "5", "3"),
			cells("1.5", "2.5", "4"),
		},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	if len(s.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(s.Rows))
	}

	want := [][]float64{
		{10, 15, 18},
		{1.5, 4, 8},
	}
	for i, row := range s.Rows {
		for j, b := range row.Boundary {
			if !b.Valid {
				t.Fatalf("row %d boundary %d undefined, want %v", i, j, want[i][j])
			}
			if b.Value != want[i][j] {
				t.Errorf("row %d boundary %d = %v, want %v", i, j, b.Value, want[i][j])
			}
		}
	}
}

func TestComputeBoundariesZeroIsValid(t *testing.T) {
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows:   [][]domain.Cell{cells("0", "5", "3")},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	want := []float64{0, 5, 8}
	for j, b := range s.Rows[0].Boundary {
		if !b.Valid {
			t.Fatalf("boundary %d undefined, want %v", j, want[j])
		}
		if b.Value != want[j] {
			t.Errorf("boundary %d = %v, want %v", j, b.Value, want[j])
		}
	}
}

func TestComputeBoundariesStopsAtFirstGap(t *testing.T) {
	// The value after the gap must be ignored even though it parses.
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows:   [][]domain.Cell{cells("10", "", "7")},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	row := s.Rows[0]
	if !row.Boundary[0].Valid || row.Boundary[0].Value != 10 {
		t.Fatalf("boundary 0 = %+v, want 10", row.Boundary[0])
	}
	if row.Boundary[1].Valid {
		t.Errorf("boundary 1 defined (%v), want undefined", row.Boundary[1].Value)
	}
	if row.Boundary[2].Valid {
		t.Errorf("boundary 2 defined (%v), want undefined after gap", row.Boundary[2].Value)
	}
}

func TestComputeBoundariesFirstLayerMissing(t *testing.T) {
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows:   [][]domain.Cell{cells("", "5", "3")},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	if len(s.Rows) != 1 {
		t.Fatalf("row must be emitted, got %d rows", len(s.Rows))
	}
	for j, b := range s.Rows[0].Boundary {
		if b.Valid {
			t.Errorf("boundary %d defined (%v), want undefined", j, b.Value)
		}
	}
}

func TestComputeBoundariesNonNumericTextIsMissing(t *testing.T) {
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows:   [][]domain.Cell{cells("2", "n/a", "3")},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	row := s.Rows[0]
	if !row.Boundary[0].Valid {
		t.Fatal("boundary 0 should be defined")
	}
	if row.Boundary[1].Valid || row.Boundary[2].Valid {
		t.Error("parse failure must truncate, not resume")
	}
}

func TestComputeBoundariesTruncationIsMonotonic(t *testing.T) {
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows: [][]domain.Cell{
			cells("1", "2", "3"),
			cells("1", "", "3"),
			cells("", "", ""),
			cells("1", "2", ""),
		},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	for i, row := range s.Rows {
		seenGap := false
		for j, b := range row.Boundary {
			if !b.Valid {
				seenGap = true
			}
			if seenGap && b.Valid {
				t.Errorf("row %d boundary %d defined after a gap", i, j)
			}
		}
	}
}

func TestComputeBoundariesChainage(t *testing.T) {
	// Chainage depends only on row position, never on cell contents.
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows: [][]domain.Cell{
			cells("", "", ""),
			cells("1", "2", "3"),
			cells("bad", "x", "y"),
		},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	want := []float64{0.25, 0.5, 0.75}
	for i, row := range s.Rows {
		if row.Chainage != want[i] {
			t.Errorf("row %d chainage = %v, want %v", i, row.Chainage, want[i])
		}
	}
}

func TestComputeBoundariesShortRecordIsMissing(t *testing.T) {
	// Ragged input: cells past the end of a record count as missing.
	table := domain.Table{
		Header: []string{"AC", "Base", "SubBase"},
		Rows:   [][]domain.Cell{cells("4", "2")},
	}

	s := ComputeBoundaries(table, threeLayerMapping(), 0.25)

	row := s.Rows[0]
	if !row.Boundary[1].Valid || row.Boundary[1].Value != 6 {
		t.Fatalf("boundary 1 = %+v, want 6", row.Boundary[1])
	}
	if row.Boundary[2].Valid {
		t.Error("boundary 2 should be undefined for a short record")
	}
}
