// Package spreadsheet adapts uploaded spreadsheet files to the
// TableSource port. One file is one survey table; the first row is
// always treated as the header.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gpr-profile-service/internal/ports"
)

// The upload's file extension maps to no known table reader.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// SourceFor picks a table source for the uploaded file by extension.
func SourceFor(filename string, r io.Reader) (ports.TableSource, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return NewXLSXSource(r), nil
	case ".csv":
		return NewCSVSource(r), nil
	default:
		return nil, fmt.Errorf("source for %q: %w", filename, ErrUnsupportedFormat)
	}
}
