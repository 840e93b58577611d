package domain

import (
	"math"
	"strconv"
	"strings"
)

// A single table cell: either a finite numeric value or missing.
// Missing covers empty cells, non-numeric text, and NaN/Inf.
type Cell struct {
	Value float64
	Valid bool
}

func Number(v float64) Cell { return Cell{Value: v, Valid: true} }

func Missing() Cell { return Cell{} }

// ParseCell interprets raw spreadsheet text as a cell value.
// Parse failures never error; they produce a missing cell.
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Cell{}
	}

	return Cell{Value: v, Valid: true}
}
