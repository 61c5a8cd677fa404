package sheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("Users")

	require.NoError(t, s.Append(ctx, "Users", []string{"id", "name"}))
	require.NoError(t, s.Append(ctx, "Users", []string{"1", "alice"}))
	require.NoError(t, s.Append(ctx, "Users", []string{"2", "bob"}))

	require.NoError(t, s.UpdateRow(ctx, "Users", 2, []string{"1", "alicia"}))
	require.NoError(t, s.DeleteRow(ctx, "Users", 2))

	rows, err := s.GetAll(ctx, "Users")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "name"}, {"2", "bob"}}, rows)
}

func TestMemoryStore_GetAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Seed("Users", []string{"id"}, []string{"1"})

	rows, err := s.GetAll(ctx, "Users")
	require.NoError(t, err)
	rows[1][0] = "changed"

	again, err := s.GetAll(ctx, "Users")
	require.NoError(t, err)
	assert.Equal(t, "1", again[1][0])
}

func TestMemoryStore_Errors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("Users")

	_, err := s.GetAll(ctx, "Nope")
	assert.ErrorIs(t, err, ErrWorksheetNotFound)
	assert.ErrorIs(t, s.Append(ctx, "Nope", nil), ErrWorksheetNotFound)
	assert.ErrorIs(t, s.UpdateRow(ctx, "Users", 1, []string{"x"}), ErrRowOutOfRange)
	assert.ErrorIs(t, s.DeleteRow(ctx, "Users", 0), ErrRowOutOfRange)
}
