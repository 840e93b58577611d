package chart

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"gpr-profile-service/internal/domain"
)

func testSurvey() *domain.Survey {
	layers := domain.LayerSet{Names: []string{"AC", "Base", "SubBase"}}

	rows := make([]domain.SurveyRow, 0, 4)
	for i := 0; i < 4; i++ {
		base := float64(i + 1)
		rows = append(rows, domain.SurveyRow{
			Chainage: float64(i+1) * 0.25,
			Boundary: []domain.Cell{
				domain.Number(base),
				domain.Number(base + 5),
				{}, // SubBase undefined everywhere; series must be skipped
			},
		})
	}

	return &domain.Survey{Layers: layers, Rows: rows}
}

func TestProfileRendererPNG(t *testing.T) {
	var buf bytes.Buffer

	r := NewProfileRenderer()
	if err := r.Render(context.Background(), testSurvey(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	magic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if buf.Len() < len(magic) || !bytes.Equal(buf.Bytes()[:len(magic)], magic) {
		t.Fatalf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func TestProfileRendererNoPlottableData(t *testing.T) {
	s := &domain.Survey{
		Layers: domain.LayerSet{Names: []string{"AC"}},
		Rows: []domain.SurveyRow{
			{Chainage: 0.25, Boundary: []domain.Cell{{}}},
			{Chainage: 0.5, Boundary: []domain.Cell{{}}},
		},
	}

	var buf bytes.Buffer
	err := NewProfileRenderer().Render(context.Background(), s, &buf)
	if !errors.Is(err, ErrNoPlottableData) {
		t.Fatalf("err = %v, want ErrNoPlottableData", err)
	}
	if buf.Len() != 0 {
		t.Errorf("renderer wrote %d bytes despite failing", buf.Len())
	}
}

func TestBoundaryPoints(t *testing.T) {
	s := testSurvey()

	xs, ys := boundaryPoints(s, 0)
	if len(xs) != 4 || len(ys) != 4 {
		t.Fatalf("expected 4 points, got %d/%d", len(xs), len(ys))
	}
	if xs[0] != 0.25 || ys[0] != 1 {
		t.Errorf("first point = (%v, %v), want (0.25, 1)", xs[0], ys[0])
	}

	xs, _ = boundaryPoints(s, 2)
	if len(xs) != 0 {
		t.Errorf("undefined layer produced %d points", len(xs))
	}
}
