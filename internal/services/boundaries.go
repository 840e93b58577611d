package services

import "gpr-profile-service/internal/domain"

// ComputeBoundaries converts per-location layer thicknesses into
// cumulative depth boundaries.
//
// Each row is processed independently, left to right over the mapped
// layers. The running sum stops permanently at the first missing or
// non-numeric thickness: that boundary and every deeper one stay
// undefined for the row, even when deeper thickness values are
// present. Zero is a valid thickness. Rows are never dropped.
//
// Chainage is derived purely from row position: (index+1) * step,
// so the first row sits at one step from the survey origin.
//
// Pure function: the input table is not modified.
func ComputeBoundaries(t domain.Table, m LayerMapping, step float64) *domain.Survey {
	s := &domain.Survey{
		Layers: domain.LayerSet{Names: m.Names},
		Rows:   make([]domain.SurveyRow, 0, len(t.Rows)),
	}

	for i, rec := range t.Rows {
		row := domain.SurveyRow{
			Chainage:  float64(i+1) * step,
			Thickness: make([]domain.Cell, len(m.Columns)),
			Boundary:  make([]domain.Cell, len(m.Columns)),
		}

		for j, col := range m.Columns {
			if col < len(rec) {
				row.Thickness[j] = rec[col]
			}
		}

		sum := 0.0
		for j, c := range row.Thickness {
			if !c.Valid {
				break
			}
			sum += c.Value
			row.Boundary[j] = domain.Number(sum)
		}

		s.Rows = append(s.Rows, row)
	}

	return s
}
