package spreadsheet

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCSVSourceReadTable(t *testing.T) {
	in := strings.Join([]string{
		"Layer 1 AC,Layer 2 Base,Layer 3 SubBase",
		"10,5,3",
		"10,,7",
		"x,2,1",
	}, "\n")

	table, err := NewCSVSource(strings.NewReader(in)).ReadTable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(table.Header) != 3 || table.Header[0] != "Layer 1 AC" {
		t.Fatalf("header = %v", table.Header)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}

	if c := table.Rows[0][0]; !c.Valid || c.Value != 10 {
		t.Errorf("row 0 cell 0 = %+v, want 10", c)
	}
	if table.Rows[1][1].Valid {
		t.Error("empty cell should be missing")
	}
	if table.Rows[2][0].Valid {
		t.Error("non-numeric cell should be missing")
	}
	if c := table.Rows[2][1]; !c.Valid || c.Value != 2 {
		t.Errorf("row 2 cell 1 = %+v, want 2", c)
	}
}

func TestCSVSourceEmptyFile(t *testing.T) {
	_, err := NewCSVSource(strings.NewReader("")).ReadTable(context.Background())
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestSourceForExtensions(t *testing.T) {
	if _, err := SourceFor("survey.CSV", strings.NewReader("")); err != nil {
		t.Errorf("csv: unexpected error: %v", err)
	}
	if _, err := SourceFor("survey.xlsx", strings.NewReader("")); err != nil {
		t.Errorf("xlsx: unexpected error: %v", err)
	}

	_, err := SourceFor("survey.pdf", strings.NewReader(""))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
