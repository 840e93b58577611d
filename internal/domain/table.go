package domain

// Raw tabular input as read from a spreadsheet: one header row
// followed by row-major cells. Rows may be ragged; consumers treat
// cells past the end of a row as missing.
type Table struct {
	Header []string
	Rows   [][]Cell
}
