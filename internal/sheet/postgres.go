package sheet

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by PostgresStore
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// PostgresStore keeps worksheets in a PostgreSQL table, one row per sheet row.
// Positions stay contiguous: deleting a row renumbers the rows below it.
type PostgresStore struct {
	db DB
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the backing table if it doesn't exist
func (p *PostgresStore) Migrate(ctx context.Context) error {
	sql := `
	CREATE TABLE IF NOT EXISTS worksheet_rows (
		worksheet  TEXT NOT NULL,
		row_number INTEGER NOT NULL,
		cells      TEXT[] NOT NULL,
		PRIMARY KEY (worksheet, row_number) DEFERRABLE INITIALLY IMMEDIATE
	);
	`
	if _, err := p.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}

// GetAll returns every row of the worksheet in row order, header first
func (p *PostgresStore) GetAll(ctx context.Context, worksheet string) ([][]string, error) {
	sql := `SELECT cells FROM worksheet_rows WHERE worksheet = $1 ORDER BY row_number`
	rows, err := p.db.Query(ctx, sql, worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to query worksheet %s: %w", worksheet, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("failed to scan worksheet row: %w", err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating worksheet rows: %w", err)
	}
	return out, nil
}

// lockWorksheetSQL serialises appends and deletes on one worksheet until the transaction ends
const lockWorksheetSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

// Append adds the row after the current last row. Concurrent appends to the
// same worksheet queue on an advisory lock instead of racing for row_number.
func (p *PostgresStore) Append(ctx context.Context, worksheet string, row []string) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin append: %w", err)
	}

	if _, err := tx.Exec(ctx, lockWorksheetSQL, worksheet); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to lock worksheet %s: %w", worksheet, err)
	}

	sql := `INSERT INTO worksheet_rows (worksheet, row_number, cells)
            SELECT $1::text, COALESCE(MAX(row_number), 0) + 1, $2::text[]
            FROM worksheet_rows WHERE worksheet = $1::text`
	if _, err := tx.Exec(ctx, sql, worksheet, row); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to append to worksheet %s: %w", worksheet, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit append: %w", err)
	}
	return nil
}

// UpdateRow overwrites the cells of one existing row
func (p *PostgresStore) UpdateRow(ctx context.Context, worksheet string, rowIndex int, row []string) error {
	sql := `UPDATE worksheet_rows SET cells = $3 WHERE worksheet = $1 AND row_number = $2`
	tag, err := p.db.Exec(ctx, sql, worksheet, rowIndex, row)
	if err != nil {
		return fmt.Errorf("failed to update worksheet %s row %d: %w", worksheet, rowIndex, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s row %d", ErrRowOutOfRange, worksheet, rowIndex)
	}
	return nil
}

// DeleteRow removes one row and shifts the rows below it up by one
func (p *PostgresStore) DeleteRow(ctx context.Context, worksheet string, rowIndex int) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}

	if _, err := tx.Exec(ctx, lockWorksheetSQL, worksheet); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to lock worksheet %s: %w", worksheet, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM worksheet_rows WHERE worksheet = $1 AND row_number = $2`, worksheet, rowIndex)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to delete worksheet %s row %d: %w", worksheet, rowIndex, err)
	}
	if tag.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("%w: %s row %d", ErrRowOutOfRange, worksheet, rowIndex)
	}

	_, err = tx.Exec(ctx, `UPDATE worksheet_rows SET row_number = row_number - 1 WHERE worksheet = $1 AND row_number > $2`, worksheet, rowIndex)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to renumber worksheet %s: %w", worksheet, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// Ping checks the database connection
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
