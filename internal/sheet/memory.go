package sheet

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps worksheets in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

// NewMemoryStore creates the named worksheets, each empty
func NewMemoryStore(worksheets ...string) *MemoryStore {
	s := &MemoryStore{sheets: make(map[string][][]string)}
	for _, ws := range worksheets {
		s.sheets[ws] = nil
	}
	return s
}

// Seed replaces the content of a worksheet, creating it if needed
func (s *MemoryStore) Seed(worksheet string, rows ...[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets[worksheet] = copyRows(rows)
}

// GetAll returns a copy of the worksheet rows
func (s *MemoryStore) GetAll(_ context.Context, worksheet string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.sheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
	}
	return copyRows(rows), nil
}

// Append adds the row at the end of the worksheet
func (s *MemoryStore) Append(_ context.Context, worksheet string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
	}
	s.sheets[worksheet] = append(rows, append([]string(nil), row...))
	return nil
}

// UpdateRow replaces one row
func (s *MemoryStore) UpdateRow(_ context.Context, worksheet string, rowIndex int, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
	}
	if rowIndex < 1 || rowIndex > len(rows) {
		return fmt.Errorf("%w: %s row %d", ErrRowOutOfRange, worksheet, rowIndex)
	}
	rows[rowIndex-1] = append([]string(nil), row...)
	return nil
}

// DeleteRow removes one row and closes the gap
func (s *MemoryStore) DeleteRow(_ context.Context, worksheet string, rowIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
	}
	if rowIndex < 1 || rowIndex > len(rows) {
		return fmt.Errorf("%w: %s row %d", ErrRowOutOfRange, worksheet, rowIndex)
	}
	s.sheets[worksheet] = append(rows[:rowIndex-1], rows[rowIndex:]...)
	return nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}
