package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"sheetcrm/internal/record"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// GoogleStore talks to one Google Sheets workbook
type GoogleStore struct {
	srv           *sheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64 // worksheet title -> numeric sheet id, needed by row deletes
}

// NewGoogleStore opens the workbook and resolves its worksheet ids once.
// Credentials come from opts, usually option.WithCredentialsFile for a service account key.
func NewGoogleStore(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleStore, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	ss, err := srv.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties(sheetId,title)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", spreadsheetID, err)
	}

	ids := make(map[string]int64, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties == nil {
			continue
		}
		ids[s.Properties.Title] = s.Properties.SheetId
	}

	return &GoogleStore{srv: srv, spreadsheetID: spreadsheetID, sheetIDs: ids}, nil
}

// GetAll reads the whole worksheet. Numbers come back unformatted, dates as displayed.
func (g *GoogleStore) GetAll(ctx context.Context, worksheet string) ([][]string, error) {
	if _, err := g.sheetID(worksheet); err != nil {
		return nil, err
	}
	resp, err := g.srv.Spreadsheets.Values.Get(g.spreadsheetID, quoteWorksheet(worksheet)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", worksheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, vals := range resp.Values {
		row := make([]string, len(vals))
		for j, v := range vals {
			row[j] = cellString(v)
		}
		rows[i] = row
	}
	return rows, nil
}

// Append adds the row below the last non-empty row
func (g *GoogleStore) Append(ctx context.Context, worksheet string, row []string) error {
	if _, err := g.sheetID(worksheet); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{toCells(row)}}
	_, err := g.srv.Spreadsheets.Values.Append(g.spreadsheetID, quoteWorksheet(worksheet)+"!A1", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to worksheet %s: %w", worksheet, err)
	}
	return nil
}

// UpdateRow overwrites columns A through the row width of one sheet row
func (g *GoogleStore) UpdateRow(ctx context.Context, worksheet string, rowIndex int, row []string) error {
	if _, err := g.sheetID(worksheet); err != nil {
		return err
	}
	if rowIndex < 1 || len(row) == 0 {
		return fmt.Errorf("%w: %s row %d", ErrRowOutOfRange, worksheet, rowIndex)
	}
	rng := fmt.Sprintf("%s!A%d:%s%d", quoteWorksheet(worksheet), rowIndex, record.ColumnLetter(len(row)), rowIndex)
	vr := &sheets.ValueRange{Values: [][]interface{}{toCells(row)}}
	_, err := g.srv.Spreadsheets.Values.Update(g.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", rng, err)
	}
	return nil
}

// DeleteRow removes the sheet row; rows below shift up
func (g *GoogleStore) DeleteRow(ctx context.Context, worksheet string, rowIndex int) error {
	sheetID, err := g.sheetID(worksheet)
	if err != nil {
		return err
	}
	if rowIndex < 1 {
		return fmt.Errorf("%w: %s row %d", ErrRowOutOfRange, worksheet, rowIndex)
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex - 1),
					EndIndex:   int64(rowIndex),
					// sheet id 0 and start index 0 are valid and must not be dropped as empty
					ForceSendFields: []string{"SheetId", "StartIndex"},
				},
			},
		}},
	}
	if _, err := g.srv.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete row %d of worksheet %s: %w", rowIndex, worksheet, err)
	}
	return nil
}

// Ping fetches the spreadsheet id as a cheap reachability check
func (g *GoogleStore) Ping(ctx context.Context) error {
	if _, err := g.srv.Spreadsheets.Get(g.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return fmt.Errorf("spreadsheet unreachable: %w", err)
	}
	return nil
}

func (g *GoogleStore) sheetID(worksheet string) (int64, error) {
	id, ok := g.sheetIDs[worksheet]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
	}
	return id, nil
}

func quoteWorksheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
