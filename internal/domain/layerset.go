package domain

import "strings"

// An ordered set of named subsurface layers shared by every row of a
// survey. Order matters: boundaries accumulate surface-down in this
// declared order.
type LayerSet struct {
	Names []string
}

// DefaultLayerSet returns the pavement layer stack observed in the
// field configuration.
func DefaultLayerSet() LayerSet {
	return LayerSet{Names: []string{"AC", "Base", "SubBase", "Lower SubBase"}}
}

func (ls LayerSet) Len() int { return len(ls.Names) }

// BoundaryColumn derives the output column name for a layer's
// cumulative boundary ("Lower SubBase" becomes "LowerSubBase_boundary").
func BoundaryColumn(layerName string) string {
	return strings.ReplaceAll(layerName, " ", "") + "_boundary"
}

// BoundaryColumns returns the boundary column names in layer order.
func (ls LayerSet) BoundaryColumns() []string {
	out := make([]string, 0, len(ls.Names))
	for _, n := range ls.Names {
		out = append(out, BoundaryColumn(n))
	}
	return out
}
