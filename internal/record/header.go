package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

var ErrSchemaDrift = errors.New("worksheet header does not match column table")

// Header is the normalised first row of a worksheet
type Header []string

// NormalizeHeader turns a header cell such as "Login Email" into "login_email"
func NormalizeHeader(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}
	return strcase.ToSnake(cell)
}

// ParseHeader normalises every header cell and drops trailing blanks
func ParseHeader(row []string) Header {
	h := make(Header, len(row))
	for i, cell := range row {
		h[i] = NormalizeHeader(cell)
	}
	// Sheets may return trailing blank header cells
	for len(h) > 0 && h[len(h)-1] == "" {
		h = h[:len(h)-1]
	}
	return h
}

// ValidateHeader checks that the live header lists exactly the expected columns in order
func ValidateHeader(got Header, want []string) error {
	for i, name := range want {
		if i >= len(got) {
			return fmt.Errorf("%w: column %d: want %q, header ends", ErrSchemaDrift, i+1, name)
		}
		if got[i] != name {
			return fmt.Errorf("%w: column %d: want %q, got %q", ErrSchemaDrift, i+1, name, got[i])
		}
	}
	if len(got) > len(want) {
		return fmt.Errorf("%w: unexpected column %d %q", ErrSchemaDrift, len(want)+1, got[len(want)])
	}
	return nil
}

// IsBlank reports whether every cell of the row is empty
func IsBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
