package sheet

import (
	"context"
	"errors"
)

var (
	ErrWorksheetNotFound = errors.New("worksheet not found")
	ErrRowOutOfRange     = errors.New("row out of range")
)

// Store is the remote workbook. Row indexes are 1-based sheet row numbers,
// so row 1 is the header and GetAll()[0] is row 1.
type Store interface {
	GetAll(ctx context.Context, worksheet string) ([][]string, error)
	Append(ctx context.Context, worksheet string, row []string) error
	UpdateRow(ctx context.Context, worksheet string, rowIndex int, row []string) error
	// DeleteRow removes the row; every later row moves up by one.
	DeleteRow(ctx context.Context, worksheet string, rowIndex int) error
	Ping(ctx context.Context) error
}
