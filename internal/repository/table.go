package repository

import (
	"context"
	"errors"
	"fmt"

	"sheetcrm/internal/record"
	"sheetcrm/internal/sheet"
)

var (
	ErrRowNotFound    = errors.New("row not found")
	ErrEmptyWorksheet = errors.New("worksheet has no header row")
)

// Codec describes how one entity type maps onto its worksheet
type Codec[T any] struct {
	Worksheet  string
	Columns    []string
	ToRow      func(T) []string
	FromRecord func(record.Record) (T, error)
}

// Repository defines operations for one worksheet of records
type Repository[T any] interface {
	Create(ctx context.Context, v T) error
	FindByID(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	Snapshot(ctx context.Context) (*Snapshot[T], error)
	EnsureSchema(ctx context.Context, initEmpty bool) error
}

type table[T any] struct {
	store sheet.Store
	codec Codec[T]
}

// NewTable creates a Repository backed by a worksheet
func NewTable[T any](store sheet.Store, codec Codec[T]) Repository[T] {
	return &table[T]{store: store, codec: codec}
}

// Create appends the record as a new row
func (t *table[T]) Create(ctx context.Context, v T) error {
	if err := t.store.Append(ctx, t.codec.Worksheet, t.codec.ToRow(v)); err != nil {
		return fmt.Errorf("failed to create %s row: %w", t.codec.Worksheet, err)
	}
	return nil
}

// FindByID returns nil, nil when no row has the id
func (t *table[T]) FindByID(ctx context.Context, id string) (*T, error) {
	snap, err := t.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	v, err := snap.Lookup(id)
	if errors.Is(err, ErrRowNotFound) {
		return nil, nil
	}
	return v, err
}

// FindAll decodes every non-blank data row in sheet order
func (t *table[T]) FindAll(ctx context.Context) ([]T, error) {
	snap, err := t.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.All()
}

// Update overwrites the row holding id. It never appends.
func (t *table[T]) Update(ctx context.Context, id string, v T) error {
	rowIndex, err := t.locate(ctx, id)
	if err != nil {
		return err
	}
	if err := t.store.UpdateRow(ctx, t.codec.Worksheet, rowIndex, t.codec.ToRow(v)); err != nil {
		return fmt.Errorf("failed to update %s row %d: %w", t.codec.Worksheet, rowIndex, err)
	}
	return nil
}

// Delete removes the row holding id
func (t *table[T]) Delete(ctx context.Context, id string) error {
	rowIndex, err := t.locate(ctx, id)
	if err != nil {
		return err
	}
	if err := t.store.DeleteRow(ctx, t.codec.Worksheet, rowIndex); err != nil {
		return fmt.Errorf("failed to delete %s row %d: %w", t.codec.Worksheet, rowIndex, err)
	}
	return nil
}

// Snapshot reads the worksheet once for repeated lookups
func (t *table[T]) Snapshot(ctx context.Context) (*Snapshot[T], error) {
	rows, err := t.store.GetAll(ctx, t.codec.Worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.codec.Worksheet, err)
	}
	return newSnapshot(t.codec, rows), nil
}

// EnsureSchema checks the live header against the column table. An empty
// worksheet gets its header written when initEmpty is set.
func (t *table[T]) EnsureSchema(ctx context.Context, initEmpty bool) error {
	rows, err := t.store.GetAll(ctx, t.codec.Worksheet)
	if err != nil {
		return fmt.Errorf("failed to read %s header: %w", t.codec.Worksheet, err)
	}
	if len(rows) == 0 || record.IsBlank(rows[0]) {
		if !initEmpty {
			return fmt.Errorf("%s: %w", t.codec.Worksheet, ErrEmptyWorksheet)
		}
		if len(rows) > 0 {
			return t.store.UpdateRow(ctx, t.codec.Worksheet, 1, t.codec.Columns)
		}
		return t.store.Append(ctx, t.codec.Worksheet, t.codec.Columns)
	}
	if err := record.ValidateHeader(record.ParseHeader(rows[0]), t.codec.Columns); err != nil {
		return fmt.Errorf("%s: %w", t.codec.Worksheet, err)
	}
	return nil
}

func (t *table[T]) locate(ctx context.Context, id string) (int, error) {
	rows, err := t.store.GetAll(ctx, t.codec.Worksheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", t.codec.Worksheet, err)
	}
	rowIndex, ok := record.FindRow(rows, id)
	if !ok {
		return 0, ErrRowNotFound
	}
	return rowIndex, nil
}

// Snapshot is one read of a worksheet
type Snapshot[T any] struct {
	codec  Codec[T]
	rows   [][]string
	header record.Header
}

func newSnapshot[T any](codec Codec[T], rows [][]string) *Snapshot[T] {
	s := &Snapshot[T]{codec: codec, rows: rows}
	if len(rows) > 0 {
		s.header = record.ParseHeader(rows[0])
	}
	return s
}

// Lookup decodes the row holding id, or returns ErrRowNotFound
func (s *Snapshot[T]) Lookup(id string) (*T, error) {
	rowIndex, ok := record.FindRow(s.rows, id)
	if !ok {
		return nil, ErrRowNotFound
	}
	v, err := s.decode(rowIndex)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// All decodes every non-blank data row
func (s *Snapshot[T]) All() ([]T, error) {
	out := make([]T, 0, len(s.rows))
	for i := 1; i < len(s.rows); i++ {
		if record.IsBlank(s.rows[i]) {
			continue
		}
		v, err := s.decode(i + 1)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Snapshot[T]) decode(rowIndex int) (T, error) {
	v, err := s.codec.FromRecord(record.FromRow(s.header, s.rows[rowIndex-1]))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode %s row %d: %w", s.codec.Worksheet, rowIndex, err)
	}
	return v, nil
}
