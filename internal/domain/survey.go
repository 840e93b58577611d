package domain

// DefaultChainageStep is the spacing between adjacent survey
// locations, in meters.
const DefaultChainageStep = 0.25

// One measured location along the survey path.
// Thickness and Boundary are index-aligned with the survey's LayerSet.
// A missing Boundary cell means the cumulative depth is undefined at
// and below that layer for this location.
type SurveyRow struct {
	Chainage  float64
	Thickness []Cell
	Boundary  []Cell
}

// Represents one processed GPR survey: per-location layer thicknesses
// with computed cumulative depth boundaries. Immutable once built; it
// is handed to rendering or serialization collaborators as-is.
type Survey struct {
	Layers LayerSet
	Rows   []SurveyRow
}

// HasPlottableData reports whether any boundary value is defined
// anywhere in the survey. A survey without plottable data is still
// valid output, but no depth-profile chart can be drawn from it.
func (s *Survey) HasPlottableData() bool {
	for _, row := range s.Rows {
		for _, b := range row.Boundary {
			if b.Valid {
				return true
			}
		}
	}
	return false
}
