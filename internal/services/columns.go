package services

import (
	"errors"
	"fmt"
	"strings"

	"gpr-profile-service/internal/domain"
)

// Input table lacks the minimum number of layer columns for the
// selected mapping mode. Structural: the whole table is rejected.
var ErrInsufficientColumns = errors.New("insufficient layer columns")

// How layer columns are located in the input table.
type ColumnMode int

const (
	// Match header cells whose normalized name contains "layer".
	// Requires at least 3 matches; layer names come from the headers.
	ByName ColumnMode = iota
	// Take the leading columns positionally, one per configured
	// layer. Requires at least as many columns as layers.
	ByPosition
)

func (m ColumnMode) String() string {
	switch m {
	case ByName:
		return "by_name"
	case ByPosition:
		return "by_position"
	default:
		return "unknown"
	}
}

// ParseColumnMode maps a configuration string to a ColumnMode.
func ParseColumnMode(s string) (ColumnMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "by_name", "byname", "name":
		return ByName, nil
	case "by_position", "byposition", "position":
		return ByPosition, nil
	default:
		return ByName, fmt.Errorf("parse column mode: unknown mode %q", s)
	}
}

// minNamedLayers is the smallest layer count a named-column table may
// carry and still describe a usable profile.
const minNamedLayers = 3

// Maps each layer to its source column index in the input table.
// Names carries the layer display names in the same order.
type LayerMapping struct {
	Columns []int
	Names   []string
}

// MapLayerColumns locates the layer columns of a raw table according
// to the mode. It returns ErrInsufficientColumns (wrapped) when the
// table cannot structurally hold the minimum layer count; this is
// distinct from a table whose cells simply contain no numeric data.
func MapLayerColumns(t domain.Table, mode ColumnMode, layers domain.LayerSet) (LayerMapping, error) {
	switch mode {
	case ByName:
		return mapByName(t)
	case ByPosition:
		return mapByPosition(t, layers)
	default:
		return LayerMapping{}, fmt.Errorf("map layer columns: unknown mode %d", mode)
	}
}

func mapByName(t domain.Table) (LayerMapping, error) {
	var m LayerMapping
	for i, h := range t.Header {
		if strings.Contains(strings.ToLower(strings.TrimSpace(h)), "layer") {
			m.Columns = append(m.Columns, i)
			m.Names = append(m.Names, strings.TrimSpace(h))
		}
	}

	if len(m.Columns) < minNamedLayers {
		return LayerMapping{}, fmt.Errorf(
			"map layer columns: found %d layer column(s), need at least %d: %w",
			len(m.Columns), minNamedLayers, ErrInsufficientColumns,
		)
	}

	return m, nil
}

func mapByPosition(t domain.Table, layers domain.LayerSet) (LayerMapping, error) {
	n := layers.Len()
	if n == 0 {
		return LayerMapping{}, errors.New("map layer columns: layer set is empty")
	}

	if len(t.Header) < n {
		return LayerMapping{}, fmt.Errorf(
			"map layer columns: table has %d column(s), need at least %d: %w",
			len(t.Header), n, ErrInsufficientColumns,
		)
	}

	m := LayerMapping{
		Columns: make([]int, n),
		Names:   make([]string, n),
	}
	for i := 0; i < n; i++ {
		m.Columns[i] = i
		m.Names[i] = layers.Names[i]
	}

	return m, nil
}
