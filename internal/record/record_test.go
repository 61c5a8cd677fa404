package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRow_ShortRowReadsEmpty(t *testing.T) {
	header := ParseHeader([]string{"id", "Name", "Phone"})
	rec := FromRow(header, []string{"u1", " Bob "})

	name, err := rec.String("name")
	require.NoError(t, err)
	assert.Equal(t, " Bob ", name, "cells are read verbatim")

	phone, err := rec.String("phone")
	require.NoError(t, err)
	assert.Equal(t, "", phone)
}

func TestRecord_MissingColumn(t *testing.T) {
	rec := Record{"id": "1"}

	_, err := rec.String("name")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "name", fe.Column)
}

func TestRecord_Float(t *testing.T) {
	rec := Record{"msrp": "10.5", "taxes": "", "bad": "ten"}

	v, err := rec.Float("msrp")
	require.NoError(t, err)
	assert.Equal(t, 10.5, v)

	v, err = rec.Float("taxes")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = rec.Float("bad")
	assert.ErrorIs(t, err, ErrCoercion)
	assert.Contains(t, err.Error(), `"ten"`)
}

func TestRecord_Int(t *testing.T) {
	rec := Record{"a": "7", "b": "12.0", "c": "1.5", "d": "x"}

	v, err := rec.Int("a")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = rec.Int("b")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = rec.Int("c")
	assert.ErrorIs(t, err, ErrCoercion)
	_, err = rec.Int("d")
	assert.ErrorIs(t, err, ErrCoercion)
}

func TestRecord_Lists(t *testing.T) {
	rec := Record{"product_ids": "p1, p2", "quantities": "2,1", "empty": "", "bad": "1,x"}

	ids, err := rec.StringList("product_ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids)

	qty, err := rec.IntList("quantities")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, qty)

	empty, err := rec.StringList("empty")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	_, err = rec.IntList("bad")
	assert.ErrorIs(t, err, ErrCoercion)
}

func TestLists_RoundTrip(t *testing.T) {
	ids := []string{"a,b", " c ", `d"e`}
	cell := JoinList(ids)
	assert.Equal(t, `["a,b"," c ","d\"e"]`, cell)

	rec := Record{"product_ids": cell, "quantities": JoinIntList([]int{2, 0, 1}), "none": JoinList(nil)}
	got, err := rec.StringList("product_ids")
	require.NoError(t, err)
	assert.Equal(t, ids, got)

	qty, err := rec.IntList("quantities")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, qty)

	none, err := rec.StringList("none")
	require.NoError(t, err)
	assert.Equal(t, []string{}, none)

	_, err = Record{"q": `["x"]`}.IntList("q")
	assert.ErrorIs(t, err, ErrCoercion)
	_, err = Record{"p": `["unterminated`}.StringList("p")
	assert.ErrorIs(t, err, ErrCoercion)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "login_email", NormalizeHeader("Login Email"))
	assert.Equal(t, "login_email", NormalizeHeader("login_email"))
	assert.Equal(t, "login_email", NormalizeHeader("loginEmail"))
	assert.Equal(t, "id", NormalizeHeader(" id "))
	assert.Equal(t, "", NormalizeHeader("  "))
}

func TestValidateHeader(t *testing.T) {
	want := []string{"id", "name", "phone"}

	assert.NoError(t, ValidateHeader(ParseHeader([]string{"ID", "Name", "Phone", ""}), want))

	err := ValidateHeader(ParseHeader([]string{"id", "phone", "name"}), want)
	assert.ErrorIs(t, err, ErrSchemaDrift)
	assert.Contains(t, err.Error(), "column 2")

	err = ValidateHeader(ParseHeader([]string{"id", "name"}), want)
	assert.ErrorIs(t, err, ErrSchemaDrift)

	err = ValidateHeader(ParseHeader([]string{"id", "name", "phone", "extra"}), want)
	assert.ErrorIs(t, err, ErrSchemaDrift)
	assert.Contains(t, err.Error(), "extra")
}

func TestFindRow(t *testing.T) {
	rows := [][]string{
		{"id", "name"},
		{"1", "alice"},
		{},
		{"2", "bob"},
		{"2", "duplicate"},
	}

	n, ok := FindRow(rows, "2")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	n, ok = FindRow(rows, "1")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = FindRow(rows, "3")
	assert.False(t, ok)
}

func TestFindRow_ComparesVerbatim(t *testing.T) {
	rows := [][]string{{"id"}, {"u1"}, {" u1"}}

	n, ok := FindRow(rows, " u1")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = FindRow(rows, "u1")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestFindRow_HeaderNeverMatches(t *testing.T) {
	rows := [][]string{{"id", "name"}, {"1", "alice"}}

	_, ok := FindRow(rows, "id")
	assert.False(t, ok)
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", ColumnLetter(1))
	assert.Equal(t, "F", ColumnLetter(6))
	assert.Equal(t, "L", ColumnLetter(12))
	assert.Equal(t, "Z", ColumnLetter(26))
	assert.Equal(t, "AA", ColumnLetter(27))
	assert.Equal(t, "AZ", ColumnLetter(52))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "10", FormatFloat(10))
	assert.Equal(t, "10.25", FormatFloat(10.25))
	assert.Equal(t, "[2,1]", JoinIntList([]int{2, 1}))
}
