package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrCoercion      = errors.New("type coercion failed")
)

// FieldError reports a column that could not be read from a row
type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingColumn) {
		return fmt.Sprintf("column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("column %q: %v (value %q)", e.Column, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Record is one data row keyed by normalised header name
type Record map[string]string

// FromRow maps a row onto the header. Cells are kept verbatim; cells past
// the end of a short row read as empty.
func FromRow(header Header, row []string) Record {
	rec := make(Record, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if i < len(row) {
			rec[name] = row[i]
		} else {
			rec[name] = ""
		}
	}
	return rec
}

// String returns the cell unchanged

func (r Record) String(column string) (string, error) {
	v, ok := r[column]
	if !ok {
		return "", &FieldError{Column: column, Err: ErrMissingColumn}
	}
	return v, nil
}

// Float parses a decimal cell. An empty cell is zero.
func (r Record) Float(column string) (float64, error) {
	v, err := r.String(column)
	if err != nil {
		return 0, err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &FieldError{Column: column, Value: v, Err: ErrCoercion}
	}
	return f, nil
}

// Int parses an integer cell. An empty cell is zero. Whole-number floats
// such as "12.0" are accepted since spreadsheets often render them that way.
func (r Record) Int(column string) (int, error) {
	v, err := r.String(column)
	if err != nil {
		return 0, err
	}
	return parseInt(column, v)
}

// StringList decodes a list cell written by JoinList
func (r Record) StringList(column string) ([]string, error) {
	v, err := r.String(column)
	if err != nil {
		return nil, err
	}
	parts, err := SplitList(v)
	if err != nil {
		return nil, &FieldError{Column: column, Value: v, Err: ErrCoercion}
	}
	return parts, nil
}

// IntList decodes a list cell written by JoinIntList
func (r Record) IntList(column string) ([]int, error) {
	v, err := r.String(column)
	if err != nil {
		return nil, err
	}
	parts, err := splitNumberList(v)
	if err != nil {
		return nil, &FieldError{Column: column, Value: v, Err: ErrCoercion}
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := parseInt(column, p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseInt(column, v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int(f)) {
		return 0, &FieldError{Column: column, Value: v, Err: ErrCoercion}
	}
	return int(f), nil
}
